// Package validate provides the validate command implementation.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync/cmd/application"
	"github.com/agentstation/labelsync/internal/cmd/emoji"
	"github.com/agentstation/labelsync/internal/cmd/output"
	"github.com/agentstation/labelsync/pkg/labels"
)

// Flags holds the validate command's flag values.
type Flags struct {
	File string
}

// addValidateFlags registers the validate command's flags and returns the bound values.
func addValidateFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "path to a YAML file containing the label template")

	return flags
}

// Result represents the result of one template check.
type Result struct {
	Check   string `json:"check"`
	Status  string `json:"status"`
	Details string `json:"details"`
}

// ExecuteValidate checks the template file and reports per-check results.
// Structural problems make the command fail; duplicate names are only
// warned about since the last entry wins when the template is applied.
func ExecuteValidate(cmd *cobra.Command, app application.Application, flags *Flags) error {
	file := flags.File
	if file == "" {
		file = app.TemplateFile()
	}

	format := output.Format(app.OutputFormat())
	progress := format == "" || format == output.FormatTable

	var results []Result
	var hasErrors bool

	if progress {
		cmd.Printf("Validating %s...\n\n", file)
	}

	// Parse the template; entry validation runs during loading
	list, err := labels.LoadTemplate(file)
	if err != nil {
		results = append(results, Result{
			Check:   "Template",
			Status:  emoji.Error + " Failed",
			Details: err.Error(),
		})
		hasErrors = true
	} else {
		results = append(results, Result{
			Check:   "Template",
			Status:  emoji.Success + " Success",
			Details: strconv.Itoa(len(list)) + " labels",
		})

		// Check for duplicate names
		if dupes := labels.Duplicates(list); len(dupes) > 0 {
			results = append(results, Result{
				Check:   "Duplicates",
				Status:  emoji.Warning + " Warning",
				Details: "duplicate names: " + strings.Join(dupes, ", "),
			})
		} else {
			results = append(results, Result{
				Check:   "Duplicates",
				Status:  emoji.Success + " Success",
				Details: "all names unique",
			})
		}
	}

	if err := output.FormatAny(cmd.OutOrStdout(), results, format); err != nil {
		return err
	}

	if hasErrors {
		return fmt.Errorf("template validation failed")
	}

	return nil
}
