package labelsync

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/agentstation/labelsync/pkg/constants"
	"github.com/agentstation/labelsync/pkg/differ"
	"github.com/agentstation/labelsync/pkg/errors"
	"github.com/agentstation/labelsync/pkg/logging"
	pkgsync "github.com/agentstation/labelsync/pkg/sync"
)

// dryRunPrefix marks preview lines so piped output stays unambiguous.
const dryRunPrefix = "[DRY RUN] "

// apply executes the plan against the source, printing one line per
// action. A failed action is reported and does not stop the run; all
// failures are aggregated into the returned error.
func (c *client) apply(ctx context.Context, plan *differ.Plan, options *pkgsync.Options, result *pkgsync.Result) error {
	actions := plan.Actions()
	result.Outcomes = make([]pkgsync.Outcome, len(actions))

	out := options.Output
	if out == nil {
		out = os.Stdout
	}

	// Dry run prints the plan and touches nothing.
	if options.DryRun {
		for i, action := range actions {
			result.Outcomes[i] = pkgsync.Outcome{Action: action}
			fmt.Fprintln(out, dryRunPrefix+action.String()) //nolint:errcheck // display output
		}
		return nil
	}

	workers := options.Concurrency
	if workers <= 0 {
		workers = 1
	}
	// GitHub's secondary rate limits trip quickly on concurrent mutations.
	if workers > constants.MaxConcurrentActions {
		workers = constants.MaxConcurrentActions
	}

	if workers == 1 {
		c.applySequential(ctx, actions, out, result)
	} else {
		c.applyConcurrent(ctx, actions, out, workers, result)
	}

	var errs []error
	for i := range result.Outcomes {
		if result.Outcomes[i].Failed() {
			errs = append(errs, result.Outcomes[i].Err)
		}
	}
	if len(errs) > 0 {
		return &errors.ApplyError{
			Failed: len(errs),
			Total:  len(actions),
			Errs:   errs,
		}
	}

	return nil
}

// applySequential runs the actions one at a time, in plan order.
func (c *client) applySequential(ctx context.Context, actions []differ.Action, out io.Writer, result *pkgsync.Result) {
	for i, action := range actions {
		err := c.runAction(ctx, action)
		result.Outcomes[i] = newOutcome(action, err)
		printOutcome(out, action, err)
	}
}

// applyConcurrent runs the actions through a bounded worker pool. Output
// lines are serialized; outcomes land at their plan index so the result
// order matches the plan regardless of completion order.
func (c *client) applyConcurrent(ctx context.Context, actions []differ.Action, out io.Writer, workers int, result *pkgsync.Result) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	semaphore := make(chan struct{}, workers)

	for i, action := range actions {
		wg.Add(1)
		go func(i int, action differ.Action) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			err := c.runAction(ctx, action)

			mu.Lock()
			result.Outcomes[i] = newOutcome(action, err)
			printOutcome(out, action, err)
			mu.Unlock()
		}(i, action)
	}

	wg.Wait()
}

// runAction dispatches a single action to the source under its own timeout.
func (c *client) runAction(ctx context.Context, action differ.Action) error {
	ctx, cancel := context.WithTimeout(ctx, constants.ActionTimeout)
	defer cancel()

	ctx = logging.WithLabel(ctx, action.Label.Name)

	var err error
	switch action.Type {
	case differ.ActionCreate:
		err = c.source.Create(ctx, action.Label)
	case differ.ActionUpdate:
		err = c.source.Update(ctx, action.Label)
	case differ.ActionDelete:
		err = c.source.Delete(ctx, action.Label.Name)
	default:
		err = &errors.ValidationError{
			Field:   "Action",
			Value:   action.Type,
			Message: "unknown action type",
		}
	}

	if err != nil {
		logging.FromContext(ctx).Debug().
			Err(err).
			Str("label", action.Label.Name).
			Str("operation", string(action.Type)).
			Msg("Action failed")
	}

	return err
}

// newOutcome records an action's result, wrapping failures so callers can
// recover the operation and label from the error chain.
func newOutcome(action differ.Action, err error) pkgsync.Outcome {
	outcome := pkgsync.Outcome{
		Action:  action,
		Applied: err == nil,
	}
	if err != nil {
		wrapped := errors.WrapAction(string(action.Type), action.Label.Name, err)
		outcome.Err = wrapped
		outcome.Error = wrapped.Error()
	}
	return outcome
}

// printOutcome renders one line per action: the action description on
// success, a FAILURE line carrying the error otherwise.
func printOutcome(out io.Writer, action differ.Action, err error) {
	if err != nil {
		fmt.Fprintf(out, "FAILURE %s %s: %v\n", //nolint:errcheck // display output
			strings.ToUpper(string(action.Type)), action.Label.Name, err)
		return
	}
	fmt.Fprintln(out, action.String()) //nolint:errcheck // display output
}
