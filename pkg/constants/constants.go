// Package constants provides shared constants used throughout the labelsync
// codebase. This includes timeouts, limits, file permissions, and other
// configuration values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the labels API
	DefaultHTTPTimeout = 30 * time.Second

	// SyncTimeout is the timeout for a full sync run
	SyncTimeout = 10 * time.Minute

	// ActionTimeout is the timeout for a single create, update, or delete call
	ActionTimeout = 1 * time.Minute

	// DefaultDebounce is how long watch mode waits for file events to settle
	DefaultDebounce = 500 * time.Millisecond
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// DefaultPageSize is the number of labels requested per page when listing
	DefaultPageSize = 100

	// MaxConcurrentActions caps how many actions may run at once when
	// concurrent apply is enabled
	MaxConcurrentActions = 5
)

// Default values
const (
	// DefaultEndpoint is the API endpoint used when none is configured
	DefaultEndpoint = "https://api.github.com"

	// DefaultTemplateFile is the template path used when none is given
	DefaultTemplateFile = "labels.yaml"
)
