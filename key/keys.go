// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Downloads - these keys govern where and how chosen video variants are written to disk.
const (
	DownloadsPath      = "downloads.path"
	DownloadsChunkSize = "downloads.chunk_size"
)

// Network Behavior - these keys tune the outbound HTTP surface shared by every platform request.
const (
	NetworkSpoofTLS = "network.spoof_tls"
)

// Size Probing - these keys control the per-variant content-length discovery pass.
const (
	ProbeConcurrent = "probe.concurrent"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing  = "tui.item_spacing"
	TUIShowURLs     = "tui.show_urls"
	TUIPromptString = "tui.prompt"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
