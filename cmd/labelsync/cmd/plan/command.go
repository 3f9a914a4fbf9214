package plan

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync/cmd/application"
)

// NewCommand creates the plan command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "plan",
		GroupID: "core",
		Short:   "Show the changes a sync would apply",
		Args:    cobra.NoArgs,
		Long: `Plan compares the label template against the repository's labels and
shows the creates, updates, and deletes a sync would apply, without
touching the repository.

A plan that finds nothing to change prints nothing in table format.
JSON and YAML formats always emit the full plan document, including
an empty one.`,
		Example: `  labelsync plan -u rust-lang -r rust -f labels.yaml
  labelsync plan -u octo -r demo -o json           # Machine-readable plan
  labelsync plan -u octo -r demo --no-delete       # Plan without deletions`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := app.Logger()

			return ExecutePlan(ctx, app, flags, logger)
		},
	}

	// Add plan-specific flags
	flags = addPlanFlags(cmd)

	return cmd
}
