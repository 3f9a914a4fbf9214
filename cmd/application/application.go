// Package application provides the application interface for labelsync commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Design Principles:
//   - Accept interfaces, return structs (Go proverb)
//   - Define interfaces where they're used, not where they're implemented
//   - Keep interfaces small and focused
//
// Usage in Commands:
//
//	import (
//	    "github.com/agentstation/labelsync/cmd/application"
//	)
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            ctx := cmd.Context() // context.Context from cobra
//	            client, err := app.Client()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use client
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    ClientFunc: func(opts ...labelsync.Option) (labelsync.Client, error) {
//	        return testClient, nil
//	    },
//	    LoggerFunc: func() *zerolog.Logger {
//	        logger := zerolog.Nop()
//	        return &logger
//	    },
//	}
//	cmd := NewCommand(mock)
//	// ... test command behavior
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/labelsync"
)

// Application provides the application interface that commands need.
// The App struct from cmd/labelsync/app automatically implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Client returns a label client with optional configuration.
	// When called without options, returns the default cached instance built from
	// the application configuration (lazy-initialized, thread-safe).
	// When called with options, creates a new instance layered on top of the
	// application configuration (no caching), so flag-level options win over
	// config file and environment values.
	//
	// Examples:
	//   c, err := app.Client()                                  // default instance (cached)
	//   c, err := app.Client(labelsync.WithRepository(o, r))    // custom instance (new)
	Client(opts ...labelsync.Option) (labelsync.Client, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// TemplateFile returns the configured label template path.
	// Commands use it as the default when no --file flag is given.
	TemplateFile() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
