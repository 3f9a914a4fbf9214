package labelsync

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/labelsync/pkg/differ"
	"github.com/agentstation/labelsync/pkg/errors"
	"github.com/agentstation/labelsync/pkg/labels"
	"github.com/agentstation/labelsync/pkg/logging"
	pkgsync "github.com/agentstation/labelsync/pkg/sync"
)

// Plan computes the label changes a run would apply, without applying them.
func (c *client) Plan(ctx context.Context, opts ...pkgsync.Option) (*differ.Plan, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, c.logger)

	options := pkgsync.Defaults().Apply(opts...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	return c.plan(ctx, options)
}

// Sync reconciles the repository's labels with the desired set. Planned
// actions are applied through the source; failures are reported and do
// not stop the run.
func (c *client) Sync(ctx context.Context, opts ...pkgsync.Option) (*pkgsync.Result, error) {
	// Step 0: Set context
	if ctx == nil {
		ctx = context.Background()
	}

	// Step 1: Parse options
	options := pkgsync.Defaults().Apply(opts...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Setup context with timeout
	var cancel context.CancelFunc
	if options.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
	} else {
		cancel = func() {} // No-op cancel if no timeout
	}
	defer cancel()

	// Step 3: Tag the run for log correlation
	runID := uuid.NewString()
	ctx = logging.WithRunID(logging.WithLogger(ctx, c.logger), runID)
	ctx = logging.WithRepository(ctx, c.options.owner, c.options.repo)
	logger := logging.FromContext(ctx)

	started := time.Now()

	// Step 4: Compute the plan
	plan, err := c.plan(ctx, options)
	if err != nil {
		return nil, err
	}

	result := &pkgsync.Result{
		RunID:      runID,
		Repository: c.Repository(),
		Plan:       plan,
		DryRun:     options.DryRun,
	}

	// Step 5: Nothing to do means no output
	if !plan.HasChanges() {
		logger.Debug().Msg("No changes detected")
		result.Duration = time.Since(started)
		return result, nil
	}

	logger.Debug().
		Int("creates", plan.Summary.Creates).
		Int("updates", plan.Summary.Updates).
		Int("deletes", plan.Summary.Deletes).
		Bool("dry_run", options.DryRun).
		Msg("Changes detected")

	// Step 6: Apply the plan, printing one line per action
	applyErr := c.apply(ctx, plan, options, result)
	result.Duration = time.Since(started)
	if applyErr != nil {
		return result, applyErr
	}

	logger.Debug().
		Int("applied", result.Applied()).
		Dur("duration", result.Duration).
		Msg("Sync completed")

	return result, nil
}

// plan loads the desired labels, lists the actual ones, and diffs them.
func (c *client) plan(ctx context.Context, options *pkgsync.Options) (*differ.Plan, error) {
	logger := logging.FromContext(ctx)

	// Desired side: explicit labels win over the template file.
	desired := options.Labels
	if desired == nil {
		loaded, err := labels.LoadTemplate(options.TemplateFile)
		if err != nil {
			return nil, err
		}
		desired = loaded
		logger.Debug().
			Str("template", options.TemplateFile).
			Int("labels", len(desired)).
			Msg("Loaded label template")
	}

	// Actual side: whatever the repository has right now.
	actual, err := c.source.List(ctx)
	if err != nil {
		return nil, &errors.SyncError{
			Repository: c.Repository(),
			Err:        err,
		}
	}

	d := differ.New(
		differ.WithCreates(options.Creates),
		differ.WithDeletes(options.Deletes),
	)
	return d.Labels(desired, actual), nil
}
