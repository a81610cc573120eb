package vk

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/vkgrab-cli/vkgrab/source"
)

// parsePayload walks the loosely-typed al_video.php json tree and pulls
// out the video metadata with its direct links. The tree shape is not
// under our control, so every step decodes defensively. Anything that
// does not match yields an empty video rather than an error, the page
// scraper is the recovery path for that case.
func parsePayload(raw []byte) *source.Video {
	video := &source.Video{Title: source.UntitledVideo}

	var envelope struct {
		Payload []json.RawMessage `json:"payload"`
	}
	if json.Unmarshal(raw, &envelope) != nil || len(envelope.Payload) < 2 {
		return video
	}

	var entries []json.RawMessage
	if json.Unmarshal(envelope.Payload[1], &entries) != nil {
		return video
	}

	params, ok := playerParams(entries)
	if !ok {
		return video
	}

	fillMetadata(video, params)
	video.Variants = collectVariants(params)

	return video
}

// playerParams finds the first entry carrying a player block and returns
// the first parameter mapping of that player. Only the native "vk" player
// carries direct links.
func playerParams(entries []json.RawMessage) (map[string]json.RawMessage, bool) {
	for _, entry := range entries {
		var wrapper struct {
			Player json.RawMessage `json:"player"`
		}
		if json.Unmarshal(entry, &wrapper) != nil || !truthy(wrapper.Player) {
			continue
		}

		var player struct {
			Type   string            `json:"type"`
			Params []json.RawMessage `json:"params"`
		}
		if json.Unmarshal(wrapper.Player, &player) != nil {
			return nil, false
		}

		if player.Type != "vk" || len(player.Params) == 0 {
			return nil, false
		}

		var params map[string]json.RawMessage
		if json.Unmarshal(player.Params[0], &params) != nil {
			return nil, false
		}

		return params, true
	}

	return nil, false
}

func fillMetadata(video *source.Video, params map[string]json.RawMessage) {
	var title string
	if json.Unmarshal(params["md_title"], &title) == nil && title != "" {
		video.Title = title
	}

	var author string
	if json.Unmarshal(params["md_author"], &author) == nil {
		video.Author = author
	}

	var duration int
	if json.Unmarshal(params["duration"], &duration) == nil {
		video.Duration = duration
	}
}

// collectVariants turns url/cache-prefixed parameter keys into mp4
// variants and a truthy hls key into the adaptive variant. One variant
// per quality, url keys win over cache keys, ordered by numeric quality
// with adaptive last.
func collectVariants(params map[string]json.RawMessage) []*source.Variant {
	links := make(map[string]string)
	fromUrlKey := make(map[string]bool)

	for key, value := range params {
		digits, ok := qualityDigits(key)
		if !ok {
			continue
		}

		var link string
		if json.Unmarshal(value, &link) != nil || link == "" {
			continue
		}

		direct := strings.HasPrefix(key, "url")
		if _, taken := links[digits]; taken && !direct && fromUrlKey[digits] {
			continue
		}

		links[digits] = link
		fromUrlKey[digits] = direct
	}

	variants := make([]*source.Variant, 0, len(links))
	for digits, link := range links {
		variants = append(variants, &source.Variant{
			Quality: "mp4_" + digits,
			URL:     link,
		})
	}

	sort.Slice(variants, func(i, j int) bool {
		a, _ := strconv.Atoi(strings.TrimPrefix(variants[i].Quality, "mp4_"))
		b, _ := strconv.Atoi(strings.TrimPrefix(variants[j].Quality, "mp4_"))
		return a < b
	})

	if hls, ok := params["hls"]; ok && truthy(hls) {
		var link string
		_ = json.Unmarshal(hls, &link)

		variants = append(variants, &source.Variant{
			Quality: source.AdaptiveQuality,
			URL:     link,
		})
	}

	return variants
}

// qualityDigits strips the url or cache prefix off a parameter key and
// reports whether the remainder is a plain quality number.
func qualityDigits(key string) (string, bool) {
	for _, prefix := range []string{"url", "cache"} {
		rest, found := strings.CutPrefix(key, prefix)
		if !found || rest == "" {
			continue
		}

		if strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
			return rest, true
		}
	}

	return "", false
}

// truthy mirrors loose boolean coercion of json values: absent, null,
// false, zero, empty string and empty containers are all false.
func truthy(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	switch trimmed {
	case "", "null", "false", "0", `""`, "[]", "{}":
		return false
	}

	return true
}
