package tui

import (
	"fmt"
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkgrab-cli/vkgrab/auth"
	"github.com/vkgrab-cli/vkgrab/internal/ui"
	"github.com/vkgrab-cli/vkgrab/open"
	"github.com/vkgrab-cli/vkgrab/source"
	"github.com/vkgrab-cli/vkgrab/style"
	"github.com/vkgrab-cli/vkgrab/util"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Ephemeral notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		if b.loading {
			b.spinnerC, cmd = b.spinnerC.Update(msg)
			return b, cmd
		}
	case progress.FrameMsg:
		model, progressCmd := b.progressC.Update(msg)
		b.progressC = model.(progress.Model)
		return b, tea.Batch(cmd, progressCmd)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		}

		// Input guard: ignore non-priority keys during async operations.
		// Loading is exempt so a fetch can still be abandoned with `back`.
		if b.busy && b.state != errorState && b.state != loadingState {
			return b, nil
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			switch b.state {
			case urlState:
				return b, tea.Quit
			case cookiesState:
				b.cookiesC.Blur()
			case resultsState:
				if b.resultsC.FilterState() != list.Unfiltered {
					b.resultsC, cmd = b.resultsC.Update(msg)
					return b, cmd
				}
				b.resultsC.ResetSelected()
				b.resultsC.ResetFilter()
				b.inputC.Focus()
			}

			b.previousState()
			b.stopLoading()
			return b, cmd
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case urlState:
		return b.updateURL(msg)
	case cookiesState:
		return b.updateCookies(msg)
	case resultsState:
		return b.updateResults(msg)
	case downloadState:
		return b.updateDownload(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, cmd
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case *source.Video:
		b.currentVideo = msg

		items := make([]list.Item, 0, len(msg.Downloadable()))
		for _, variant := range msg.Downloadable() {
			items = append(items, &listItem{internal: variant})
		}

		cmd = b.resultsC.SetItems(items)
		b.resultsC.Title = b.resultsTitle(msg)
		b.resultsC.ResetSelected()
		b.stopLoading()
		b.newState(resultsState)
		return b, cmd
	case spinner.TickMsg:
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	}

	return b, nil
}

func (b *statefulBubble) resultsTitle(video *source.Video) string {
	var sb strings.Builder

	sb.WriteString(video.Title)

	if video.Author != "" {
		sb.WriteString(" " + style.Faint("by "+video.Author))
	}

	if video.Duration > 0 {
		sb.WriteString(" " + style.Faint(util.FormatDuration(video.Duration)))
	}

	return sb.String()
}

func (b *statefulBubble) updateURL(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.cookies):
			b.cookiesC.SetValue(b.credentials.Header())
			b.cookiesC.Focus()
			b.newState(cookiesState)
			return b, textarea.Blink
		case bubblesKey.Matches(msg, b.keymap.clearInput):
			b.inputC.SetValue("")
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			url := strings.TrimSpace(b.inputC.Value())
			if url == "" {
				return b, nil
			}

			b.progressStatus = "Resolving video"
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.spinnerC.Tick, b.fetchVideo(url), b.waitForVideo())
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateCookies(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			raw := strings.TrimSpace(b.cookiesC.Value())
			b.cookiesC.Blur()
			b.previousState()

			if raw == "" {
				b.setCredentials(nil)
				return b, ui.Notify("Cookies cleared")
			}

			credentials := auth.ParseCookies(raw)
			b.setCredentials(credentials)
			return b, ui.Notify(fmt.Sprintf("Saved %s", util.Quantify(len(credentials), "cookie", "cookies")))
		case bubblesKey.Matches(msg, b.keymap.clearInput):
			b.cookiesC.SetValue("")
			return b, nil
		}
	}

	b.cookiesC, cmd = b.cookiesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.cookies):
			b.cookiesC.SetValue(b.credentials.Header())
			b.cookiesC.Focus()
			b.newState(cookiesState)
			return b, textarea.Blink
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if item, ok := b.resultsC.SelectedItem().(*listItem); ok {
				if err := open.Start(item.internal.URL); err != nil {
					return b, ui.Notify("Failed to open the link")
				}
				return b, ui.Notify("Opened in browser")
			}
		case bubblesKey.Matches(msg, b.keymap.download):
			if b.resultsC.FilterState() == list.Filtering {
				break
			}

			if item, ok := b.resultsC.SelectedItem().(*listItem); ok {
				b.currentVariant = item.internal
				b.downloadPercent = 0
				b.newState(downloadState)
				return b, tea.Batch(b.startDownload(item.internal), b.waitForDownload())
			}
		}
	case *source.Video:
		// A late fetch result while already browsing is ignored.
		return b, nil
	}

	b.resultsC, cmd = b.resultsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateDownload(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case downloadProgressMsg:
		b.downloadPercent = int(msg)
		return b, tea.Batch(b.progressC.SetPercent(float64(msg)/100), b.waitForDownload())
	case downloadDoneMsg:
		b.downloadedPath = string(msg)
		b.busy = false
		b.setState(resultsState)
		return b, ui.Notify(fmt.Sprintf("Saved to %s", string(msg)))
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}
