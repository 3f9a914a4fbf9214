package validate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync/cmd/application"
)

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Validate a label template file",
		Args:    cobra.NoArgs,
		Long: `Validate checks a label template file without contacting GitHub.

This command validates:
  - YAML structure (a sequence of name/color entries)
  - Label names (must not be empty)
  - Colors (six hexadecimal digits, no leading #)
  - Duplicate names (reported as warnings; the last entry wins)`,
		Example: `  labelsync validate
  labelsync validate -f labels.yaml
  labelsync validate -f labels.yaml -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ExecuteValidate(cmd, app, flags)
		},
	}

	// Add validate-specific flags
	flags = addValidateFlags(cmd)

	return cmd
}
