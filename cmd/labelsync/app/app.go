// Package app provides the application context and dependency management
// for the labelsync CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/labelsync"
	"github.com/agentstation/labelsync/pkg/errors"
)

// App represents the labelsync application with all its dependencies.
// It provides a centralized place for configuration, logging, and
// the label client, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Label client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client labelsync.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// TemplateFile returns the configured label template path.
func (a *App) TemplateFile() string {
	return a.config.TemplateFile
}

// Client returns a label client. Without options it returns the cached
// instance built from the app configuration, creating it lazily; this is
// thread-safe and ensures only one instance is created. With options it
// creates a new instance layered on the configuration so callers can
// override the repository, token, or endpoint per invocation.
func (a *App) Client(opts ...labelsync.Option) (labelsync.Client, error) {
	if len(opts) > 0 {
		return labelsync.New(append(a.buildClientOptions(), opts...)...)
	}

	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := labelsync.New(a.buildClientOptions()...)
	if err != nil {
		return nil, err
	}

	a.client = c
	return c, nil
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []labelsync.Option {
	opts := []labelsync.Option{
		labelsync.WithLogger(a.logger),
	}

	if a.config.Owner != "" || a.config.Repo != "" {
		opts = append(opts, labelsync.WithRepository(a.config.Owner, a.config.Repo))
	}
	if a.config.Token != "" {
		opts = append(opts, labelsync.WithToken(a.config.Token))
	}
	if a.config.Endpoint != "" {
		opts = append(opts, labelsync.WithEndpoint(a.config.Endpoint))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom label client (useful for testing).
func WithClient(client labelsync.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
