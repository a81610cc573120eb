// Package ui holds internal state and rendering helpers for ephemeral
// terminal notifications.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Notifier keeps the state of a non-blocking terminal alert.
type Notifier struct {
	notification string
	notifiedAt   time.Time
}

// ClearNotificationMsg resets the visual notification state.
type ClearNotificationMsg struct{}

// Notify returns a tea.Cmd raising an ephemeral alert.
func Notify(message string) tea.Cmd {
	return func() tea.Msg {
		return message
	}
}

// ClearNotification returns a delayed tea.Cmd that clears the current
// notification after a fixed duration.
func ClearNotification() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return ClearNotificationMsg{}
	})
}

// Update processes incoming messages to modify the notification state.
func (n *Notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		n.notification = msg
		n.notifiedAt = time.Now()
		return ClearNotification()
	case ClearNotificationMsg:
		n.notification = ""
		return nil
	}
	return nil
}

// View appends the current notification to the last line of the view.
func (n *Notifier) View(mainContent string) string {
	if n.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	notifier := "\033[90m" + n.notification + "\033[0m"

	if len(lines) > 0 {
		lines[len(lines)-1] = lines[len(lines)-1] + "  " + notifier
	}
	return strings.Join(lines, "\n")
}
