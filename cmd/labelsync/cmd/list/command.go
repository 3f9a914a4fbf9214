package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync/cmd/application"
)

// NewCommand creates the list command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "management",
		Short:   "List the labels on a repository",
		Args:    cobra.NoArgs,
		Long: `List prints the labels that currently exist on a GitHub repository,
sorted by name.

The YAML format produces a valid label template, so the output can
seed a template file for an existing repository:

    labelsync list -u octo -r demo -o yaml > labels.yaml`,
		Example: `  labelsync list -u rust-lang -r rust
  labelsync list -u octo -r demo -o yaml > labels.yaml
  labelsync list -u octo -r demo -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := app.Logger()

			return ExecuteList(ctx, app, flags, logger)
		},
	}

	// Add list-specific flags
	flags = addListFlags(cmd)

	return cmd
}
