// Package list provides the list command implementation.
package list

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync"
	"github.com/agentstation/labelsync/cmd/application"
	"github.com/agentstation/labelsync/internal/cmd/output"
)

// Flags holds the list command's flag values.
type Flags struct {
	Token    string
	User     string
	Repo     string
	Endpoint string
}

// addListFlags registers the list command's flags and returns the bound values.
func addListFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVarP(&flags.Token, "token", "t", "", "OAuth token for authenticating with GitHub")
	cmd.Flags().StringVarP(&flags.User, "user", "u", "", "name of the user or organization that owns the repository")
	cmd.Flags().StringVarP(&flags.Repo, "repo", "r", "", "name of the repository to list labels from")
	cmd.Flags().StringVarP(&flags.Endpoint, "endpoint", "e", "", "API endpoint to use (defaults to https://api.github.com)")

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

// ExecuteList fetches and renders the labels of the repository named by the flags.
func ExecuteList(ctx context.Context, app application.Application, flags *Flags, logger *zerolog.Logger) error {
	client, err := app.Client(flags.ClientOptions()...)
	if err != nil {
		return err
	}

	list, err := client.Labels(ctx)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("repository", client.Repository()).
		Int("labels", len(list)).
		Msg("Listed repository labels")

	return output.FormatLabels(os.Stdout, list, output.Format(app.OutputFormat()))
}
