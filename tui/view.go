package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	"github.com/vkgrab-cli/vkgrab/color"
	"github.com/vkgrab-cli/vkgrab/icon"
	"github.com/vkgrab-cli/vkgrab/style"
	"github.com/vkgrab-cli/vkgrab/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case urlState:
		output = b.viewURL()
	case cookiesState:
		output = b.viewCookies()
	case resultsState:
		output = b.viewResults()
	case downloadState:
		output = b.viewDownload()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewURL() string {
	lines := []string{
		style.Title("VK Video"),
		"",
		b.inputC.View(),
	}

	if !b.credentials.IsEmpty() {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s cookies stored", icon.Get(icon.Lock))))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewCookies() string {
	lines := []string{
		style.Title("Cookies"),
		"",
		"Paste a raw cookie header from your browser session.",
		style.Faint("Saving an empty panel clears the stored cookies."),
		"",
		b.cookiesC.View(),
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewResults() string {
	if len(b.resultsC.Items()) == 0 {
		return b.viewNoResults()
	}

	return listExtraPaddingStyle.Render(b.resultsC.View())
}

// viewNoResults explains why nothing came back. With cookies stored the
// video itself is unreachable, without them authentication is the first
// thing to try.
func (b *statefulBubble) viewNoResults() string {
	var title, explanation string
	if b.currentVideo != nil {
		title = b.currentVideo.Title
	}

	if b.credentials.IsEmpty() {
		explanation = "No download links found. The video may require authentication, " +
			"try adding cookies from your browser session."
	} else {
		explanation = "No download links found even with cookies. " +
			"The video is likely private or deleted."
	}

	lines := []string{
		style.Title("No Links"),
		"",
	}

	if title != "" {
		lines = append(lines, style.Truncate(b.width)(style.Fg(color.Purple)(title)), "")
	}

	lines = append(lines, wrap.String(icon.Get(icon.Fail)+" "+explanation, b.width))

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewDownload() string {
	var name string
	if b.currentVariant != nil {
		name = b.currentVariant.Quality
	}

	lines := []string{
		style.Title("Downloading"),
		"",
		style.Truncate(b.width)(fmt.Sprintf("%s %s", icon.Get(icon.Download), style.Fg(color.Purple)(b.downloadName()))),
		"",
		b.progressC.ViewAs(float64(b.downloadPercent) / 100),
		"",
		style.Faint(fmt.Sprintf("%s %d%%", name, b.downloadPercent)),
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) downloadName() string {
	if b.currentVideo == nil {
		return ""
	}

	return util.SanitizeFilename(b.currentVideo.Title)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
