// Package inline provides the implementation for the application's
// non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"

	"github.com/vkgrab-cli/vkgrab/source"
)

type Variant struct {
	// Quality is the variant label, mp4_<height> or hls.
	Quality string `json:"quality"`
	// URL is the direct download link.
	URL string `json:"url"`
	// Size is the probed file size in bytes, zero when unknown.
	Size int64 `json:"size"`
	// SizeFormatted is the human-readable file size.
	SizeFormatted string `json:"size_formatted"`
}

type Output struct {
	Reference string     `json:"reference"`
	Title     string     `json:"title"`
	Author    string     `json:"author,omitempty"`
	Duration  int        `json:"duration,omitempty"`
	Variants  []*Variant `json:"variants"`
}

func asJson(ref source.Reference, video *source.Video) ([]byte, error) {
	variants := make([]*Variant, len(video.Variants))
	for i, v := range video.Variants {
		variants[i] = &Variant{
			Quality:       v.Quality,
			URL:           v.URL,
			Size:          v.Size,
			SizeFormatted: v.PrettySize(),
		}
	}

	return json.Marshal(&Output{
		Reference: ref.String(),
		Title:     video.Title,
		Author:    video.Author,
		Duration:  video.Duration,
		Variants:  variants,
	})
}
