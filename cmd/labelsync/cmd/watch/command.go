package watch

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync/cmd/application"
)

// NewCommand creates the watch command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "watch",
		GroupID: "core",
		Short:   "Sync repository labels whenever the template changes",
		Args:    cobra.NoArgs,
		Long: `Watch runs a sync immediately, then watches the label template file and
runs another sync each time it changes. Rapid successive writes are
debounced so editors that save in several steps trigger a single run.

Sync failures are logged and do not stop the watch. The command runs
until interrupted and exits zero on a clean shutdown.`,
		Example: `  labelsync watch -u octo -r demo -f labels.yaml
  labelsync watch -u octo -r demo --dry-run        # Preview on every edit
  labelsync watch -u octo -r demo --debounce 2s    # Settle window for bulk edits`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := app.Logger()

			return ExecuteWatch(ctx, app, flags, logger)
		},
	}

	// Add watch-specific flags
	flags = addWatchFlags(cmd)

	return cmd
}
