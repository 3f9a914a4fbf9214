package sync

import (
	"fmt"
	"time"

	"github.com/agentstation/labelsync/pkg/differ"
)

// Result represents the complete result of a reconciliation run. Outcomes
// holds one entry per planned action, in plan order.
type Result struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	Repository string        `json:"repository" yaml:"repository"`
	Plan       *differ.Plan  `json:"plan" yaml:"plan"`
	Outcomes   []Outcome     `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
	DryRun     bool          `json:"dry_run" yaml:"dry_run"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Outcome records the fate of a single planned action.
type Outcome struct {
	Action  differ.Action `json:"action" yaml:"action"`
	Applied bool          `json:"applied" yaml:"applied"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`

	// Err carries the typed error for callers; Error above is its
	// rendering for serialized output.
	Err error `json:"-" yaml:"-"`
}

// Failed returns true if the action was attempted and failed.
func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// HasChanges returns true if the run produced a non-empty plan.
func (r *Result) HasChanges() bool {
	return r.Plan != nil && r.Plan.HasChanges()
}

// Failed returns the number of actions that failed.
func (r *Result) Failed() int {
	failed := 0
	for i := range r.Outcomes {
		if r.Outcomes[i].Failed() {
			failed++
		}
	}
	return failed
}

// Applied returns the number of actions applied successfully.
func (r *Result) Applied() int {
	applied := 0
	for i := range r.Outcomes {
		if r.Outcomes[i].Applied && !r.Outcomes[i].Failed() {
			applied++
		}
	}
	return applied
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	if !r.HasChanges() {
		return "No changes detected"
	}

	s := r.Plan.Summary
	summary := fmt.Sprintf("%d changes (%d creates, %d updates, %d deletes)",
		s.Total, s.Creates, s.Updates, s.Deletes)

	switch {
	case r.DryRun:
		summary += " (dry run)"
	case r.Failed() > 0:
		summary += fmt.Sprintf(", %d failed", r.Failed())
	}

	return summary
}
