// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Downloads - these keys control where and how episode videos are written.
const (
	DownloadsPath       = "downloads.path"
	DownloadsMaxQuality = "downloads.max_quality"
	DownloadsForce      = "downloads.force"
	DownloadsReferer    = "downloads.referer"
)

// Catalog Site - these keys configure the session with the catalog site.
const (
	LaracastsBaseURL  = "laracasts.base_url"
	LaracastsEmail    = "laracasts.email"
	LaracastsPassword = "laracasts.password"
)

// Network - these keys tune the shared HTTP client.
const (
	NetworkSpoofTLS  = "network.spoof_tls"
	NetworkUserAgent = "network.user_agent"
)

// History Tracking - these keys configure the persistence of completed downloads.
const (
	HistorySaveOnDownload = "history.save_on_download"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern terminal output.
const (
	CliColored      = "cli.colored"
	CliHeadless     = "cli.headless"
	CliVersionCheck = "cli.version_check"
)
