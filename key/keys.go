// Package key defines the dotted configuration identifiers shared by config, flags and environment bindings.
package key

// Service access - these keys identify the API account and endpoint.
const (
	APIKey      = "api.key"
	APILanguage = "api.language"
	APIRootURL  = "api.root_url"
)

// Transport - these keys tune the HTTP layer.
const (
	NetworkTimeout        = "network.timeout"
	NetworkRetries        = "network.retries"
	NetworkTLSFingerprint = "network.tls_fingerprint"
	NetworkUserAgent      = "network.user_agent"
)

// Downloads - where series bundles are stored and extracted.
const (
	DownloadsPath = "downloads.path"
)

// Search - these keys control result listing and query history.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchLimit                = "search.limit"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI execution environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliWrapWidth    = "cli.wrap_width"
)
