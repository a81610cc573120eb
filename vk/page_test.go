package vk

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePage(t *testing.T) {
	Convey("parsePage", t, func() {
		Convey("Should read the title from either known markup class", func() {
			old := parsePage([]byte(`<div class="mv_title">Old Layout</div>`))
			So(old.Title, ShouldEqual, "Old Layout")

			current := parsePage([]byte(`<h1 class="VideoPageInfoRow__title">New Layout</h1>`))
			So(current.Title, ShouldEqual, "New Layout")
		})

		Convey("Should default the title when the markup has neither", func() {
			video := parsePage([]byte(`<html><body></body></html>`))
			So(video.Title, ShouldEqual, untitledPage)
		})

		Convey("Should unescape the extracted link", func() {
			video := parsePage([]byte(`"url720":"https:\/\/cdn.example.com\/a.mp4"`))
			So(video.Variants, ShouldHaveLength, 1)
			So(video.Variants[0].URL, ShouldEqual, "https://cdn.example.com/a.mp4")
		})

		Convey("Should take only the first link even when several are present", func() {
			video := parsePage([]byte(`"url240":"https://a.mp4" "url720":"https://b.mp4"`))
			So(video.Variants, ShouldHaveLength, 1)
			So(video.Variants[0].Quality, ShouldEqual, "mp4_240")
		})
	})
}
