package tui

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vkgrab-cli/vkgrab/key"
	"github.com/vkgrab-cli/vkgrab/source"
	"github.com/vkgrab-cli/vkgrab/style"
)

// listItem implements the list.Item interface, wrapping a video variant
// for terminal display.
type listItem struct {
	internal *source.Variant
}

// Title renders the quality label with the probed size next to it.
func (t *listItem) Title() string {
	var sb strings.Builder

	sb.WriteString(t.internal.Quality)

	if t.internal.Size > 0 {
		sb.WriteString(" ")
		sb.WriteString(style.Faint(fmt.Sprintf("(%s)", t.internal.PrettySize())))
	}

	return sb.String()
}

// Description shows the direct link underneath the label when enabled.
func (t *listItem) Description() string {
	if !viper.GetBool(key.TUIShowURLs) {
		return ""
	}

	return style.Faint(t.internal.URL)
}

// FilterValue returns the string used for real-time list filtering.
func (t *listItem) FilterValue() string {
	return t.internal.Quality
}
