package differ

import (
	"sort"

	"github.com/agentstation/labelsync/pkg/labels"
)

// Differ computes action plans from desired and actual label sets.
type Differ interface {
	// Labels compares the desired labels against the labels currently on
	// the repository and returns the plan that reconciles them.
	Labels(desired, actual []labels.Label) *Plan
}

// differ is the default implementation of Differ.
type differ struct {
	// Options controlling which action types may enter a plan
	creates bool
	deletes bool
}

// New creates a Differ with default settings: creates and deletes are
// both planned. Updates are always planned and cannot be disabled.
func New(opts ...Option) Differ {
	d := &differ{
		creates: true,
		deletes: true,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Labels compares two label sets and returns the reconciling plan.
func (diff *differ) Labels(desired, actual []labels.Label) *Plan {
	plan := &Plan{
		Creates: []labels.Label{},
		Updates: []Update{},
		Deletes: []labels.Label{},
	}

	// Index by name for efficient lookup. Duplicate names collapse here,
	// last entry wins.
	desiredSet := labels.NewSet(desired)
	actualSet := labels.NewSet(actual)

	// Find creates and updates
	for name, want := range desiredSet {
		have, exists := actualSet.Get(name)
		if !exists {
			if diff.creates {
				plan.Creates = append(plan.Creates, want)
			}
			continue
		}
		// Same name on both sides is an update when the color drifted,
		// never a delete and re-create
		if !want.SameColor(have) {
			plan.Updates = append(plan.Updates, Update{
				Name:     name,
				Existing: have,
				New:      want,
			})
		}
	}

	// Find deletes
	if diff.deletes {
		for name, have := range actualSet {
			if !desiredSet.Contains(name) {
				plan.Deletes = append(plan.Deletes, have)
			}
		}
	}

	// Sort for consistent output
	sortPlan(plan)

	plan.Summary = calculateSummary(plan)

	return plan
}

// sortPlan sorts all slices in the plan by label name.
func sortPlan(plan *Plan) {
	sort.Slice(plan.Creates, func(i, j int) bool {
		return plan.Creates[i].Name < plan.Creates[j].Name
	})
	sort.Slice(plan.Updates, func(i, j int) bool {
		return plan.Updates[i].Name < plan.Updates[j].Name
	})
	sort.Slice(plan.Deletes, func(i, j int) bool {
		return plan.Deletes[i].Name < plan.Deletes[j].Name
	})
}
