// Package sync provides options and result types for label reconciliation runs.
package sync

import (
	"io"
	"os"
	"time"

	"github.com/agentstation/labelsync/pkg/constants"
	"github.com/agentstation/labelsync/pkg/errors"
	"github.com/agentstation/labelsync/pkg/labels"
)

// Options controls a single reconciliation run in Client.Sync().
type Options struct {
	// Input selection
	TemplateFile string         // Path to the YAML template
	Labels       []labels.Label // Desired labels provided directly, bypassing the template

	// Plan control
	DryRun  bool // Print actions without applying them
	Creates bool // Plan creation of labels missing from the repository
	Deletes bool // Plan deletion of labels absent from the template

	// Execution control
	Concurrency int           // Parallel API calls while applying (1 means sequential)
	Timeout     time.Duration // Timeout for the entire run (0 means none)

	// Output control
	Output io.Writer // Where action lines are printed
}

// Apply applies the given options to the run options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Defaults returns the default run options. Updates are always planned;
// creates and deletes start enabled and are suppressed per run.
func Defaults() *Options {
	return &Options{
		TemplateFile: constants.DefaultTemplateFile,
		Labels:       nil,
		DryRun:       false,
		Creates:      true,
		Deletes:      true,
		Concurrency:  1,
		Timeout:      constants.SyncTimeout,
		Output:       os.Stdout,
	}
}

// Option is a function that configures run Options.
type Option func(*Options)

// Validate checks if the run options are valid.
func (o *Options) Validate() error {
	if o.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   o.Timeout,
			Message: "timeout must be non-negative",
		}
	}

	if o.Concurrency < 0 {
		return &errors.ValidationError{
			Field:   "Concurrency",
			Value:   o.Concurrency,
			Message: "concurrency must be non-negative",
		}
	}

	if o.TemplateFile == "" && o.Labels == nil {
		return &errors.ValidationError{
			Field:   "TemplateFile",
			Message: "a template file or explicit labels are required",
		}
	}

	return nil
}

// WithTemplateFile configures the YAML template to load desired labels from.
func WithTemplateFile(path string) Option {
	return func(opts *Options) {
		opts.TemplateFile = path
	}
}

// WithLabels configures the desired labels directly, bypassing the template file.
func WithLabels(desired []labels.Label) Option {
	return func(opts *Options) {
		opts.Labels = desired
	}
}

// WithDryRun configures dry run mode.
func WithDryRun(dryRun bool) Option {
	return func(opts *Options) {
		opts.DryRun = dryRun
	}
}

// WithCreates configures whether missing labels are created.
func WithCreates(creates bool) Option {
	return func(opts *Options) {
		opts.Creates = creates
	}
}

// WithDeletes configures whether extra labels are deleted.
func WithDeletes(deletes bool) Option {
	return func(opts *Options) {
		opts.Deletes = deletes
	}
}

// WithConcurrency configures how many API calls run in parallel while applying.
func WithConcurrency(n int) Option {
	return func(opts *Options) {
		opts.Concurrency = n
	}
}

// WithTimeout configures the timeout for the entire run.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// WithOutput configures where action lines are printed.
func WithOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Output = w
	}
}
