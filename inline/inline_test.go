package inline

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vkgrab-cli/vkgrab/source"
)

func TestPrintLinks(t *testing.T) {
	Convey("Given a video with progressive and adaptive variants", t, func() {
		video := &source.Video{
			Title: "Some Video",
			Variants: []*source.Variant{
				{Quality: "mp4_480", URL: "https://cdn.example.com/480.mp4", Size: 2048},
				{Quality: source.AdaptiveQuality, URL: "https://cdn.example.com/index.m3u8"},
			},
		}

		var buf bytes.Buffer

		Convey("The listing should label the adaptive variant", func() {
			err := printLinks(&Options{Out: &buf}, video)

			So(err, ShouldBeNil)
			out := buf.String()
			So(out, ShouldContainSubstring, "mp4_480")
			So(out, ShouldContainSubstring, "2.00 KB")
			So(out, ShouldContainSubstring, "hls")
			So(out, ShouldContainSubstring, "(adaptive)")
			So(out, ShouldContainSubstring, "https://cdn.example.com/index.m3u8")
		})

		Convey("A quality filter should narrow the listing to one variant", func() {
			err := printLinks(&Options{Out: &buf, Quality: "mp4_480"}, video)

			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "mp4_480")
			So(buf.String(), ShouldNotContainSubstring, "m3u8")
		})

		Convey("An unknown quality should be rejected", func() {
			err := printLinks(&Options{Out: &buf, Quality: "mp4_4320"}, video)

			So(err, ShouldNotBeNil)
		})
	})
}
