// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strings"

	"github.com/agentstation/labelsync/internal/cmd/emoji"
	"github.com/agentstation/labelsync/pkg/differ"
	"github.com/agentstation/labelsync/pkg/labels"
	"github.com/agentstation/labelsync/pkg/sync"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// LabelsToTableData converts labels to table format.
func LabelsToTableData(list []labels.Label) Data {
	headers := []string{"Name", "Color"}

	rows := make([][]string, 0, len(list))
	for _, label := range list {
		rows = append(rows, []string{label.Name, label.Color})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// PlanToTableData converts a plan to table format. Rows appear in
// execution order. The Color column holds the color a label will have
// after the plan is applied, Current the color it has on the repository
// now; "-" marks a side that does not exist.
func PlanToTableData(plan *differ.Plan) Data {
	headers := []string{"Action", "Label", "Color", "Current"}

	rows := make([][]string, 0, plan.Summary.Total)
	for _, label := range plan.Creates {
		rows = append(rows, []string{"CREATE", label.Name, label.Color, "-"})
	}
	for _, update := range plan.Updates {
		rows = append(rows, []string{"UPDATE", update.Name, update.New.Color, update.Existing.Color})
	}
	for _, label := range plan.Deletes {
		rows = append(rows, []string{"DELETE", label.Name, "-", label.Color})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// ResultToTableData converts a sync result to table format.
func ResultToTableData(result *sync.Result) Data {
	headers := []string{"Action", "Label", "Status", "Details"}

	rows := make([][]string, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		action := strings.ToUpper(string(outcome.Action.Type))

		var status, details string
		switch {
		case outcome.Failed():
			status = emoji.Error + " Failed"
			details = outcome.Error
		case outcome.Applied:
			status = emoji.Success + " Applied"
			details = outcome.Action.Label.Color
		default:
			status = emoji.Optional + " Planned"
			details = outcome.Action.Label.Color
		}
		if outcome.Action.Type == differ.ActionDelete && details == outcome.Action.Label.Color {
			details = "-"
		}

		rows = append(rows, []string{action, outcome.Action.Label.Name, status, details})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}
