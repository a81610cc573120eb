package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUpdateLoadingBack(t *testing.T) {
	Convey("Given a fetch in progress", t, func() {
		bubble := newBubble(&Options{})
		bubble.setState(urlState)
		bubble.newState(loadingState)
		_ = bubble.startLoading()

		So(bubble.busy, ShouldBeTrue)

		Convey("Esc should abandon it and return to the previous screen", func() {
			model, _ := bubble.Update(tea.KeyMsg{Type: tea.KeyEsc})

			updated := model.(*statefulBubble)
			So(updated.state, ShouldEqual, urlState)
			So(updated.loading, ShouldBeFalse)
			So(updated.busy, ShouldBeFalse)
		})

		Convey("Other keys should still be swallowed while loading", func() {
			model, _ := bubble.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

			updated := model.(*statefulBubble)
			So(updated.state, ShouldEqual, loadingState)
			So(updated.loading, ShouldBeTrue)
		})
	})
}
