package sync

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync/cmd/application"
)

// NewCommand creates the sync command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "sync",
		GroupID: "core",
		Short:   "Reconcile repository labels with a template",
		Args:    cobra.NoArgs,
		Long: `Sync reconciles the labels on a GitHub repository with a YAML template:

1. Labels in the template but missing from the repository are created.
2. Labels present on both sides with a different color are recolored.
3. Labels on the repository but absent from the template are deleted.

One line is printed per change; a run that finds nothing to change
prints nothing. Limit the behavior with the --no-create and --no-delete
flags. Failures are reported per label and do not stop the run, but any
failure makes the command exit nonzero.

The template is a sequence of name/color entries:

    - name: bug
      color: fc2929
    - name: duplicate
      color: cccccc

An OAuth token can be obtained from https://github.com/settings/tokens.
The token requires the "repo" scope for private repositories and the
"public_repo" scope otherwise.`,
		Example: `  labelsync sync -u rust-lang -r rust -f labels.yaml
  labelsync sync -u octo -r demo --dry-run         # Preview changes
  labelsync sync -u octo -r demo --no-delete       # Keep labels missing from the file
  labelsync sync -u octo -r demo --concurrency 3   # Apply actions in parallel`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := app.Logger()

			return ExecuteSync(ctx, app, flags, logger)
		},
	}

	// Add sync-specific flags
	flags = addSyncFlags(cmd)

	return cmd
}
