package vk

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vkgrab-cli/vkgrab/source"
)

func playerResponse(params string) []byte {
	return []byte(fmt.Sprintf(
		`{"payload": [0, ["noise", {"player": {"type": "vk", "params": [%s]}}]]}`,
		params,
	))
}

func TestParsePayload(t *testing.T) {
	Convey("parsePayload", t, func() {
		Convey("Should extract variants and metadata", func() {
			raw := playerResponse(`{
				"url240": "https://cdn.example.com/240.mp4",
				"url720": "https://cdn.example.com/720.mp4",
				"hls": "https://cdn.example.com/master.m3u8",
				"md_title": "Test Video",
				"md_author": "Some Author",
				"duration": 120
			}`)

			video := parsePayload(raw)
			So(video.Title, ShouldEqual, "Test Video")
			So(video.Author, ShouldEqual, "Some Author")
			So(video.Duration, ShouldEqual, 120)
			So(video.Variants, ShouldHaveLength, 3)
			So(video.Variants[0].Quality, ShouldEqual, "mp4_240")
			So(video.Variants[1].Quality, ShouldEqual, "mp4_720")
			So(video.Variants[2].Quality, ShouldEqual, source.AdaptiveQuality)
		})

		Convey("Should accept cache-prefixed link keys", func() {
			raw := playerResponse(`{"cache480": "https://cdn.example.com/480.mp4"}`)

			video := parsePayload(raw)
			So(video.Variants, ShouldHaveLength, 1)
			So(video.Variants[0].Quality, ShouldEqual, "mp4_480")
		})

		Convey("Should prefer url keys over cache keys for the same quality", func() {
			raw := playerResponse(`{
				"cache360": "https://cdn.example.com/cached.mp4",
				"url360": "https://cdn.example.com/direct.mp4"
			}`)

			video := parsePayload(raw)
			So(video.Variants, ShouldHaveLength, 1)
			So(video.Variants[0].URL, ShouldEqual, "https://cdn.example.com/direct.mp4")
		})

		Convey("Should ignore keys whose suffix is not a quality number", func() {
			raw := playerResponse(`{
				"url240": "https://cdn.example.com/240.mp4",
				"url_thumb": "https://cdn.example.com/thumb.jpg",
				"urlTarget": "somewhere"
			}`)

			video := parsePayload(raw)
			So(video.Variants, ShouldHaveLength, 1)
		})

		Convey("Should default the title when md_title is missing", func() {
			raw := playerResponse(`{"url144": "https://cdn.example.com/144.mp4"}`)

			video := parsePayload(raw)
			So(video.Title, ShouldEqual, source.UntitledVideo)
		})

		Convey("Should not add an adaptive variant for a falsy hls value", func() {
			raw := playerResponse(`{"url240": "https://cdn.example.com/240.mp4", "hls": ""}`)

			video := parsePayload(raw)
			So(video.Variants, ShouldHaveLength, 1)
		})

		Convey("Should yield an empty video when no entry carries a player", func() {
			raw := []byte(`{"payload": [0, ["noise", {"other": 1}]]}`)

			video := parsePayload(raw)
			So(video.Variants, ShouldBeEmpty)
			So(video.Title, ShouldEqual, source.UntitledVideo)
		})

		Convey("Should yield an empty video for a non-native player", func() {
			raw := []byte(`{"payload": [0, [{"player": {"type": "youtube", "params": [{}]}}]]}`)

			video := parsePayload(raw)
			So(video.Variants, ShouldBeEmpty)
		})

		Convey("Should survive structurally malformed trees", func() {
			for _, raw := range []string{
				`{}`,
				`{"payload": null}`,
				`{"payload": [0]}`,
				`{"payload": [0, "not a list"]}`,
				`{"payload": [0, [{"player": 1}]]}`,
				`{"payload": [0, [{"player": {"type": "vk", "params": []}}]]}`,
				`{"payload": [0, [{"player": {"type": "vk", "params": ["scalar"]}}]]}`,
			} {
				video := parsePayload([]byte(raw))
				So(video, ShouldNotBeNil)
				So(video.Variants, ShouldBeEmpty)
			}
		})
	})
}
