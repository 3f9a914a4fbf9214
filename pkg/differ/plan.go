// Package differ compares a desired label set against the labels that
// actually exist on a repository and produces a minimal action plan.
package differ

import (
	"fmt"
	"strings"

	"github.com/agentstation/labelsync/pkg/labels"
)

// ActionType represents the type of a planned action.
type ActionType string

const (
	// ActionCreate indicates a label will be created.
	ActionCreate ActionType = "create"
	// ActionUpdate indicates a label's color will be updated.
	ActionUpdate ActionType = "update"
	// ActionDelete indicates a label will be deleted.
	ActionDelete ActionType = "delete"
)

// Action is a single planned step. For creates and updates Label carries
// the desired label; for deletes it carries the label as it exists on the
// repository.
type Action struct {
	Type  ActionType   `json:"type" yaml:"type"`
	Label labels.Label `json:"label" yaml:"label"`
}

// String renders the action the way the executor reports it.
func (a Action) String() string {
	if a.Type == ActionDelete {
		return fmt.Sprintf("DELETE %s", a.Label.Name)
	}
	return fmt.Sprintf("%s %s: %s", strings.ToUpper(string(a.Type)), a.Label.Name, a.Label.Color)
}

// Update represents a color change to an existing label.
type Update struct {
	Name     string       `json:"name" yaml:"name"`         // Label name
	Existing labels.Label `json:"existing" yaml:"existing"` // Label as it exists on the repository
	New      labels.Label `json:"new" yaml:"new"`           // Desired label
}

// Plan is the set of actions that reconciles a repository's labels with
// the desired set. Plans are value objects: once computed they are never
// modified, only read.
type Plan struct {
	Creates []labels.Label `json:"creates" yaml:"creates"`
	Updates []Update       `json:"updates" yaml:"updates"`
	Deletes []labels.Label `json:"deletes" yaml:"deletes"`
	Summary Summary        `json:"summary" yaml:"summary"`
}

// Summary provides summary statistics for a plan.
type Summary struct {
	Creates int `json:"creates" yaml:"creates"`
	Updates int `json:"updates" yaml:"updates"`
	Deletes int `json:"deletes" yaml:"deletes"`
	Total   int `json:"total" yaml:"total"`
}

// HasChanges returns true if the plan contains any actions.
func (p *Plan) HasChanges() bool {
	return p.Summary.Total > 0
}

// IsEmpty returns true if the plan contains no actions.
func (p *Plan) IsEmpty() bool {
	return p.Summary.Total == 0
}

// Actions flattens the plan into execution order: creates first, then
// updates, then deletes, each group sorted by label name.
func (p *Plan) Actions() []Action {
	actions := make([]Action, 0, p.Summary.Total)
	for _, l := range p.Creates {
		actions = append(actions, Action{Type: ActionCreate, Label: l})
	}
	for _, u := range p.Updates {
		actions = append(actions, Action{Type: ActionUpdate, Label: u.New})
	}
	for _, l := range p.Deletes {
		actions = append(actions, Action{Type: ActionDelete, Label: l})
	}
	return actions
}

// String returns one line per planned action in execution order. An
// empty plan renders as an empty string.
func (p *Plan) String() string {
	if p.IsEmpty() {
		return ""
	}
	lines := make([]string, 0, p.Summary.Total)
	for _, a := range p.Actions() {
		lines = append(lines, a.String())
	}
	return strings.Join(lines, "\n")
}

// calculateSummary computes the summary for a plan.
func calculateSummary(p *Plan) Summary {
	creates := len(p.Creates)
	updates := len(p.Updates)
	deletes := len(p.Deletes)

	return Summary{
		Creates: creates,
		Updates: updates,
		Deletes: deletes,
		Total:   creates + updates + deletes,
	}
}
