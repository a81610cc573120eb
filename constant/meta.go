// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Vkgrab is the canonical application identifier used for filesystem paths and CLI branding.
	Vkgrab = "vkgrab"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the desktop-browser User-Agent string attached to every outbound platform request.
	// The platform's internal endpoints reject clients that do not look like a real browser.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, injected via -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
