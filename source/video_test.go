package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReference(t *testing.T) {
	Convey("Reference", t, func() {
		Convey("Should join owner and item with an underscore", func() {
			ref := Reference{Owner: "-123", Item: "456"}
			So(ref.String(), ShouldEqual, "-123_456")
		})

		Convey("Zero value should report as zero", func() {
			So(Reference{}.IsZero(), ShouldBeTrue)
			So(Reference{Owner: "1"}.IsZero(), ShouldBeFalse)
		})
	})
}

func TestVideo(t *testing.T) {
	Convey("Video", t, func() {
		video := &Video{
			Title: "test",
			Variants: []*Variant{
				{Quality: "mp4_240", URL: "http://example.com/240"},
				{Quality: "mp4_720", URL: "http://example.com/720"},
				{Quality: AdaptiveQuality, URL: "http://example.com/hls"},
			},
		}

		Convey("Downloadable should exclude the adaptive stream", func() {
			downloadable := video.Downloadable()
			So(downloadable, ShouldHaveLength, 2)
			for _, v := range downloadable {
				So(v.Adaptive(), ShouldBeFalse)
			}
		})

		Convey("VariantByQuality should find registered labels", func() {
			v, ok := video.VariantByQuality("mp4_720")
			So(ok, ShouldBeTrue)
			So(v.URL, ShouldEqual, "http://example.com/720")

			_, ok = video.VariantByQuality("mp4_1080")
			So(ok, ShouldBeFalse)
		})

		Convey("An empty variant set is a valid video", func() {
			empty := &Video{Title: UntitledVideo}
			So(empty.Variants, ShouldBeEmpty)
			So(empty.Downloadable(), ShouldBeEmpty)
		})
	})
}

func TestVariant(t *testing.T) {
	Convey("Variant", t, func() {
		Convey("String should return the quality label", func() {
			v := &Variant{Quality: "mp4_480"}
			So(v.String(), ShouldEqual, "mp4_480")
		})

		Convey("PrettySize should format the probed size", func() {
			v := &Variant{Quality: "mp4_480", Size: 1536}
			So(v.PrettySize(), ShouldEqual, "1.50 KB")
		})
	})
}
