// Package constants provides shared constants used throughout the contribmap
// codebase. This includes timeouts, file permissions, and other values that
// should be consistent across the application.
package constants

import "time"

// Timeout constants define timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for outbound HTTP requests
	DefaultHTTPTimeout = 30 * time.Second

	// NotifyTimeout is the timeout for a single webhook post
	NotifyTimeout = 10 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Output constants define the shape of generated files and identifiers
const (
	// DefaultOutputDir is the directory per-country files are written into
	DefaultOutputDir = "contributors"

	// IndexFileName is the name of the summary index file
	IndexFileName = "index.json"

	// RecordIDWidth is the zero-padded width of the ordinal in record IDs,
	// e.g. "kr_001"
	RecordIDWidth = 3
)

// External service constants
const (
	// SheetExportURLFormat builds the CSV export URL for a published
	// Google Sheet from the escaped sheet ID
	SheetExportURLFormat = "https://docs.google.com/spreadsheets/d/%s/export?format=csv"

	// FlagURLFormat builds a flag image URL from a lowercase country code
	FlagURLFormat = "https://flagcdn.com/w40/%s.png"

	// GlobalFlagURL is the flag shown for the synthetic "Global" entry.
	// The UN flag stands in since there is no global flag.
	GlobalFlagURL = "https://flagcdn.com/w40/un.png"
)
