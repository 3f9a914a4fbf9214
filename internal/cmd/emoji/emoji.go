// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output provide a consistent visual language across commands.
// These symbols are used for status indicators, alerts, and user feedback in terminal output.
const (
	// Success represents successful completion of an operation.
	// Used for: applied actions, valid templates, passing checks.
	Success = "✓"

	// Error represents failures or missing required configuration.
	// Used for: failed actions, invalid templates, missing tokens.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: duplicate template entries, deprecation notices.
	Warning = "!"

	// Optional represents optional or skipped states.
	// Used for: planned but not applied actions, suppressed changes.
	Optional = "-"

	// Info represents informational messages.
	// Used for: general information, tips, context.
	Info = "i"
)
