package sync

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/labelsync/cmd/application"
	"github.com/agentstation/labelsync/internal/cmd/output"
	pkgsync "github.com/agentstation/labelsync/pkg/sync"
)

// ExecuteSync runs a reconciliation against the repository named by the flags.
func ExecuteSync(ctx context.Context, app application.Application, flags *Flags, logger *zerolog.Logger) error {
	client, err := app.Client(flags.ClientOptions()...)
	if err != nil {
		return err
	}

	syncOpts := flags.SyncOptions(app.TemplateFile())

	// Structured formats replace the line protocol: silence the per-action
	// lines and render the full result once at the end instead.
	format := output.Format(app.OutputFormat())
	structured := format == output.FormatJSON || format == output.FormatYAML
	if structured {
		syncOpts = append(syncOpts, pkgsync.WithOutput(io.Discard))
	}

	result, runErr := client.Sync(ctx, syncOpts...)
	if structured && result != nil {
		if err := output.FormatResult(os.Stdout, result, format); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	logger.Debug().
		Str("repository", client.Repository()).
		Msg(result.Summary())

	return nil
}
