package tui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vkgrab-cli/vkgrab/auth"
	"github.com/vkgrab-cli/vkgrab/source"
)

func TestViewNoResults(t *testing.T) {
	Convey("viewNoResults", t, func() {
		bubble := newBubble(&Options{})
		bubble.width = 200
		bubble.height = 40
		bubble.currentVideo = &source.Video{Title: "Locked Away"}

		Convey("Without stored cookies it should suggest adding them", func() {
			bubble.setCredentials(nil)

			view := bubble.viewNoResults()
			So(view, ShouldContainSubstring, "Locked Away")
			So(view, ShouldContainSubstring, "try adding cookies")
			So(view, ShouldNotContainSubstring, "private or deleted")
		})

		Convey("With stored cookies it should report the video as private or deleted", func() {
			bubble.setCredentials(auth.Credentials{"remixsid": "abc"})

			view := bubble.viewNoResults()
			So(view, ShouldContainSubstring, "private or deleted")
			So(view, ShouldNotContainSubstring, "try adding cookies")
		})

		Convey("Results view should fall through to the guidance screen when the list is empty", func() {
			bubble.setCredentials(nil)

			So(bubble.resultsC.Items(), ShouldBeEmpty)
			So(bubble.viewResults(), ShouldContainSubstring, "try adding cookies")
		})
	})
}
