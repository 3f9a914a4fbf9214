// Package watch provides the watch command implementation.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync"
	"github.com/agentstation/labelsync/cmd/application"
	"github.com/agentstation/labelsync/pkg/constants"
	pkgsync "github.com/agentstation/labelsync/pkg/sync"
)

// Flags holds the watch command's flag values.
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
	Debounce    time.Duration
}

// addWatchFlags registers the watch command's flags and returns the bound values.
func addWatchFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "path to a YAML file containing the label template")
	cmd.Flags().StringVarP(&flags.Token, "token", "t", "", "OAuth token for authenticating with GitHub")
	cmd.Flags().StringVarP(&flags.User, "user", "u", "", "name of the user or organization that owns the repository")
	cmd.Flags().StringVarP(&flags.Repo, "repo", "r", "", "name of the repository to apply the label template to")
	cmd.Flags().StringVarP(&flags.Endpoint, "endpoint", "e", "", "API endpoint to use (defaults to https://api.github.com)")
	cmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "d", false, "print what each run would do without actually doing it")
	cmd.Flags().BoolVar(&flags.NoCreate, "no-create", false, "do not create labels missing from the repo but present in the file")
	cmd.Flags().BoolVar(&flags.NoDelete, "no-delete", false, "do not delete labels in the repo that are not in the file")
	cmd.Flags().IntVar(&flags.Concurrency, "concurrency", 1, "number of label actions to run at once")
	cmd.Flags().DurationVar(&flags.Debounce, "debounce", constants.DefaultDebounce, "how long to wait for file events to settle before syncing")

	return flags
}

// ClientOptions converts the repository flags into client options.
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
func (f *Flags) SyncOptions(file string) []pkgsync.Option {
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

// ExecuteWatch syncs once, then re-syncs whenever the template file changes.
func ExecuteWatch(ctx context.Context, app application.Application, flags *Flags, logger *zerolog.Logger) error {
	client, err := app.Client(flags.ClientOptions()...)
	if err != nil {
		return err
	}

	file := flags.File
	if file == "" {
		file = app.TemplateFile()
	}
	syncOpts := flags.SyncOptions(file)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close() //nolint:errcheck // nothing to do with a close error on shutdown

	// Watch the directory rather than the file itself: editors often
	// replace the file by rename, which drops a watch on the file path.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return err
	}

	logger.Info().
		Str("file", file).
		Str("repository", client.Repository()).
		Dur("debounce", flags.Debounce).
		Msg("Watching label template")

	// Reconcile once before waiting for changes
	runSync(ctx, client, syncOpts, logger)

	// A nil channel blocks forever; each matching event replaces it,
	// extending the settle window.
	var settled <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(file) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug().
				Str("event", event.Op.String()).
				Msg("Template changed")
			settled = time.After(flags.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("Watcher error")

		case <-settled:
			settled = nil
			runSync(ctx, client, syncOpts, logger)
		}
	}
}

// runSync performs one reconciliation, logging failures instead of
// returning them so the watch keeps running.
func runSync(ctx context.Context, client labelsync.Client, opts []pkgsync.Option, logger *zerolog.Logger) {
	result, err := client.Sync(ctx, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("Sync failed")
		return
	}

	logger.Debug().
		Str("run_id", result.RunID).
		Msg(result.Summary())
}
