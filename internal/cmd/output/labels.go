package output

import (
	"io"

	"github.com/agentstation/labelsync/internal/cmd/table"
	"github.com/agentstation/labelsync/pkg/differ"
	"github.com/agentstation/labelsync/pkg/labels"
	"github.com/agentstation/labelsync/pkg/sync"
)

// FormatLabels handles the common pattern of formatting labels for output.
// This encapsulates the switch logic for different output formats.
func FormatLabels(w io.Writer, list []labels.Label, format Format) error {
	formatter := NewFormatter(format)

	// Transform to output format
	var outputData any
	switch format {
	case FormatTable, "":
		outputData = table.LabelsToTableData(list)
	default:
		outputData = list
	}

	return formatter.Format(w, outputData)
}

// FormatPlan handles the common pattern of formatting a plan for output.
func FormatPlan(w io.Writer, plan *differ.Plan, format Format) error {
	formatter := NewFormatter(format)

	// Transform to output format
	var outputData any
	switch format {
	case FormatTable, "":
		outputData = table.PlanToTableData(plan)
	default:
		outputData = plan
	}

	return formatter.Format(w, outputData)
}

// FormatResult handles the common pattern of formatting a sync result for output.
func FormatResult(w io.Writer, result *sync.Result, format Format) error {
	formatter := NewFormatter(format)

	// Transform to output format
	var outputData any
	switch format {
	case FormatTable, "":
		outputData = table.ResultToTableData(result)
	default:
		outputData = result
	}

	return formatter.Format(w, outputData)
}

// FormatAny handles the common pattern of formatting any data type for output.
// This is useful for commands with custom data structures.
func FormatAny(w io.Writer, data any, format Format) error {
	formatter := NewFormatter(format)
	return formatter.Format(w, data)
}
