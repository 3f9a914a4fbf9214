package app

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	initcmd "github.com/agentstation/labelsync/cmd/labelsync/cmd/initialize"
	listcmd "github.com/agentstation/labelsync/cmd/labelsync/cmd/list"
	plancmd "github.com/agentstation/labelsync/cmd/labelsync/cmd/plan"
	synccmd "github.com/agentstation/labelsync/cmd/labelsync/cmd/sync"
	validatecmd "github.com/agentstation/labelsync/cmd/labelsync/cmd/validate"
	watchcmd "github.com/agentstation/labelsync/cmd/labelsync/cmd/watch"
)

// NewSyncCommand creates the sync command bound to this app.
func (a *App) NewSyncCommand() *cobra.Command {
	return synccmd.NewCommand(a)
}

// NewPlanCommand creates the plan command bound to this app.
func (a *App) NewPlanCommand() *cobra.Command {
	return plancmd.NewCommand(a)
}

// NewWatchCommand creates the watch command bound to this app.
func (a *App) NewWatchCommand() *cobra.Command {
	return watchcmd.NewCommand(a)
}

// NewListCommand creates the list command bound to this app.
func (a *App) NewListCommand() *cobra.Command {
	return listcmd.NewCommand(a)
}

// NewInitCommand creates the init command bound to this app.
func (a *App) NewInitCommand() *cobra.Command {
	return initcmd.NewCommand(a)
}

// NewValidateCommand creates the validate command bound to this app.
func (a *App) NewValidateCommand() *cobra.Command {
	return validatecmd.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the labelsync CLI.`,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("labelsync version %s\n", a.version)
			cmd.Printf("commit: %s\n", a.commit)
			cmd.Printf("built: %s\n", a.date)
			cmd.Printf("built by: %s\n", a.builtBy)
			cmd.Printf("go version: %s\n", runtime.Version())
			cmd.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// NewManCommand creates the hidden man page generator command.
func (a *App) NewManCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Long:   `Generate man page for the labelsync CLI tool.`,
		Hidden: true, // Hide from help output since it's mainly for internal use
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   "LABELSYNC",
				Section: "1",
				Source:  "labelsync",
				Manual:  "labelsync Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
