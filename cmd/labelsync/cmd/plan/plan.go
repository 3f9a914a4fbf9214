// Package plan provides the plan command implementation.
package plan

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync"
	"github.com/agentstation/labelsync/cmd/application"
	"github.com/agentstation/labelsync/internal/cmd/output"
	pkgsync "github.com/agentstation/labelsync/pkg/sync"
)

// Flags holds the plan command's flag values.
type Flags struct {
	File     string
	Token    string
	User     string
	Repo     string
	Endpoint string
	NoCreate bool
	NoDelete bool
}

// addPlanFlags registers the plan command's flags and returns the bound values.
func addPlanFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "path to a YAML file containing the label template")
	cmd.Flags().StringVarP(&flags.Token, "token", "t", "", "OAuth token for authenticating with GitHub")
	cmd.Flags().StringVarP(&flags.User, "user", "u", "", "name of the user or organization that owns the repository")
	cmd.Flags().StringVarP(&flags.Repo, "repo", "r", "", "name of the repository to plan against")
	cmd.Flags().StringVarP(&flags.Endpoint, "endpoint", "e", "", "API endpoint to use (defaults to https://api.github.com)")
	cmd.Flags().BoolVar(&flags.NoCreate, "no-create", false, "do not plan creates for labels missing from the repo")
	cmd.Flags().BoolVar(&flags.NoDelete, "no-delete", false, "do not plan deletes for labels missing from the file")

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

// PlanOptions converts the behavior flags into sync run options.
func (f *Flags) PlanOptions(templateFile string) []pkgsync.Option {
	file := f.File
	if file == "" {
		file = templateFile
	}

	return []pkgsync.Option{
		pkgsync.WithTemplateFile(file),
		pkgsync.WithCreates(!f.NoCreate),
		pkgsync.WithDeletes(!f.NoDelete),
	}
}

// ExecutePlan computes and renders the plan for the repository named by the flags.
func ExecutePlan(ctx context.Context, app application.Application, flags *Flags, logger *zerolog.Logger) error {
	client, err := app.Client(flags.ClientOptions()...)
	if err != nil {
		return err
	}

	plan, err := client.Plan(ctx, flags.PlanOptions(app.TemplateFile())...)
	if err != nil {
		return err
	}

	format := output.Format(app.OutputFormat())
	if plan.IsEmpty() && (format == "" || format == output.FormatTable) {
		// No changes, no output
		logger.Debug().
			Str("repository", client.Repository()).
			Msg("No changes detected")
		return nil
	}

	return output.FormatPlan(os.Stdout, plan, format)
}
