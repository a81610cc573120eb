package vk

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vkgrab-cli/vkgrab/source"
)

func TestExtractReference(t *testing.T) {
	Convey("ExtractReference", t, func() {
		Convey("Should handle a plain video url", func() {
			ref, err := ExtractReference("https://vk.com/video123456_789")
			So(err, ShouldBeNil)
			So(ref.Owner, ShouldEqual, "123456")
			So(ref.Item, ShouldEqual, "789")
		})

		Convey("Should handle community videos with a negative owner", func() {
			ref, err := ExtractReference("https://vk.com/video-987_654321")
			So(err, ShouldBeNil)
			So(ref.Owner, ShouldEqual, "-987")
			So(ref.Item, ShouldEqual, "654321")
		})

		Convey("Should handle urls with extra query parameters", func() {
			ref, err := ExtractReference("https://vk.com/video-1_2?list=abc123")
			So(err, ShouldBeNil)
			So(ref.String(), ShouldEqual, "-1_2")
		})

		Convey("Should handle the legacy embed form", func() {
			ref, err := ExtractReference("https://vk.com/video_ext.php?oid=-111&id=222")
			So(err, ShouldBeNil)
			So(ref.Owner, ShouldEqual, "-111")
			So(ref.Item, ShouldEqual, "222")
		})

		Convey("Should reject input without a reference", func() {
			_, err := ExtractReference("https://vk.com/feed")
			So(err, ShouldEqual, source.ErrNoReference)

			_, err = ExtractReference("")
			So(err, ShouldEqual, source.ErrNoReference)
		})
	})
}
