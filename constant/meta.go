// Package constant defines immutable application-level identifiers and service defaults.
package constant

const (
	// Tvdbx is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Tvdbx = "tvdbx"

	// Version is the current application semantic version string.
	Version = "0.4.2"

	// UserAgent is the default User-Agent sent with every request to the service.
	UserAgent = Tvdbx + "/" + Version
)

// Build metadata, injected with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
