// Package sync provides the sync command implementation.
package sync

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync"
	pkgsync "github.com/agentstation/labelsync/pkg/sync"
)

// Flags holds the sync command's flag values.
type Flags struct {
	File        string
	Token       string
	User        string
	Repo        string
	Endpoint    string
	DryRun      bool
	NoCreate    bool
	NoDelete    bool
	Concurrency int
}

// addSyncFlags registers the sync command's flags and returns the bound values.
func addSyncFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "path to a YAML file containing the label template")
	cmd.Flags().StringVarP(&flags.Token, "token", "t", "", "OAuth token for authenticating with GitHub")
	cmd.Flags().StringVarP(&flags.User, "user", "u", "", "name of the user or organization that owns the repository")
	cmd.Flags().StringVarP(&flags.Repo, "repo", "r", "", "name of the repository to apply the label template to")
	cmd.Flags().StringVarP(&flags.Endpoint, "endpoint", "e", "", "API endpoint to use (defaults to https://api.github.com)")
	cmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "d", false, "print what the program would do without actually doing it")
	cmd.Flags().BoolVar(&flags.NoCreate, "no-create", false, "do not create labels missing from the repo but present in the file")
	cmd.Flags().BoolVar(&flags.NoDelete, "no-delete", false, "do not delete labels in the repo that are not in the file")
	cmd.Flags().IntVar(&flags.Concurrency, "concurrency", 1, "number of label actions to run at once")

	return flags
}

// ClientOptions converts the repository flags into client options. Flags
// that were not set are omitted so configuration and environment values
// stay in effect.
func (f *Flags) ClientOptions() []labelsync.Option {
	var opts []labelsync.Option

	if f.User != "" || f.Repo != "" {
		opts = append(opts, labelsync.WithRepository(f.User, f.Repo))
	}
	if f.Token != "" {
		opts = append(opts, labelsync.WithToken(f.Token))
	}
	if f.Endpoint != "" {
		opts = append(opts, labelsync.WithEndpoint(f.Endpoint))
	}

	return opts
}

// SyncOptions converts the behavior flags into sync run options.
// templateFile is the configured default used when --file was not given.
func (f *Flags) SyncOptions(templateFile string) []pkgsync.Option {
	file := f.File
	if file == "" {
		file = templateFile
	}

	opts := []pkgsync.Option{
		pkgsync.WithTemplateFile(file),
		pkgsync.WithCreates(!f.NoCreate),
		pkgsync.WithDeletes(!f.NoDelete),
	}

	if f.DryRun {
		opts = append(opts, pkgsync.WithDryRun(true))
	}
	if f.Concurrency > 0 {
		opts = append(opts, pkgsync.WithConcurrency(f.Concurrency))
	}

	return opts
}
