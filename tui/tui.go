// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkgrab-cli/vkgrab/auth"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// URL is an optional video url to resolve right away, skipping the
	// input screen.
	URL string

	// Credentials are cookies to start the session with.
	Credentials auth.Credentials
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
