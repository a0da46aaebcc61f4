// Package constants provides shared constants used throughout the fairscan
// codebase: worker limits, file permissions, and output defaults that should
// stay consistent across the application.
package constants

// Concurrency constants bound parallel work
const (
	// DefaultScanWorkers is the default number of players reconciled
	// concurrently.
	DefaultScanWorkers = 4

	// MaxScanWorkers caps the --workers flag.
	MaxScanWorkers = 64
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Output constants
const (
	// DefaultOutputFormat is used when no format flag is given and stdout
	// is not a terminal.
	DefaultOutputFormat = "json"

	// NarrativeSeparator joins narrative phrases into one passthrough string.
	NarrativeSeparator = "; "
)
