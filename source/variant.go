// Package source defines the domain models and interfaces for video discovery and retrieval.
package source

import "github.com/vkgrab-cli/vkgrab/util"

// AdaptiveQuality is the fixed label of the adaptive (HLS) stream variant.
// Adaptive streams have no single content length and are never size-probed.
const AdaptiveQuality = "hls"

// Variant is one downloadable rendition of a video: a quality label
// ("mp4_720" or AdaptiveQuality), a direct URL, and an optional byte size
// (zero until probed). Labels are unique within a fetch.
type Variant struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
	Size    int64  `json:"size,omitempty"`
}

// String returns the quality label for display.
func (v *Variant) String() string {
	return v.Quality
}

// Adaptive reports whether the variant is a multi-bitrate stream with no fixed total size.
func (v *Variant) Adaptive() bool {
	return v.Quality == AdaptiveQuality
}

// PrettySize returns the human-readable rendition of the probed byte size.
func (v *Variant) PrettySize() string {
	return util.FormatBytes(v.Size)
}
