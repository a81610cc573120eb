package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the interface, resolving right away when a url was given
// on the command line.
func (b *statefulBubble) Init() tea.Cmd {
	if b.options.URL != "" {
		b.inputC.SetValue(b.options.URL)
		b.setState(loadingState)
		b.progressStatus = "Resolving video"
		return tea.Batch(b.startLoading(), b.spinnerC.Tick, b.fetchVideo(b.options.URL), b.waitForVideo())
	}

	b.setState(urlState)
	return textinput.Blink
}
