package initialize

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync/cmd/application"
)

// NewCommand creates the init command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "init",
		GroupID: "management",
		Short:   "Write a starter label template",
		Args:    cobra.NoArgs,
		Long: `Init writes one of the starter label templates shipped with labelsync
so a repository can start from a known set instead of an empty file.

Available starters:
  default   the labels GitHub creates on a new repository
  classic   the pre-2017 GitHub label palette

The command refuses to overwrite an existing file unless --force is
given. Edit the generated file, then run sync to apply it.`,
		Example: `  labelsync init
  labelsync init -f team/labels.yaml
  labelsync init --template classic --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ExecuteInit(cmd, app, flags)
		},
	}

	// Add init-specific flags
	flags = addInitFlags(cmd)

	return cmd
}
