// Package labelsync reconciles GitHub repository labels against a YAML
// template. It computes the minimal set of create, update, and delete
// actions that make the repository's labels match the template, then
// applies them through the GitHub API.
//
// Labelsync follows a plan/apply model:
//   - Labels present in the template but not the repository are created
//   - Labels present on both sides with different colors are updated
//   - Labels present in the repository but not the template are deleted
//
// Creates and deletes can be suppressed per run; updates are always
// applied since both sides agree the label should exist.
//
// Example usage:
//
//	// Create a client bound to a repository
//	client, err := labelsync.New(
//	    labelsync.WithRepository("octo", "demo"),
//	    labelsync.WithToken(os.Getenv("GITHUB_TOKEN")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Preview the changes without applying them
//	plan, err := client.Plan(ctx, sync.WithTemplateFile("labels.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(plan)
//
//	// Reconcile the repository with the template
//	result, err := client.Sync(ctx, sync.WithTemplateFile("labels.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
package labelsync

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/agentstation/labelsync/internal/github"
	"github.com/agentstation/labelsync/pkg/differ"
	"github.com/agentstation/labelsync/pkg/errors"
	"github.com/agentstation/labelsync/pkg/labels"
	"github.com/agentstation/labelsync/pkg/logging"
	pkgsync "github.com/agentstation/labelsync/pkg/sync"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Source lists and mutates the labels of a repository. The GitHub API
// client implements it; tests substitute their own.
type Source interface {
	// List returns every label currently in the repository.
	List(ctx context.Context) ([]labels.Label, error)

	// Create adds a new label.
	Create(ctx context.Context, label labels.Label) error

	// Update changes the color of an existing label.
	Update(ctx context.Context, label labels.Label) error

	// Delete removes a label by name.
	Delete(ctx context.Context, name string) error
}

// Client plans and applies label changes for a single repository.
type Client interface {
	// Plan computes the changes a run would apply, without applying them.
	Plan(ctx context.Context, opts ...pkgsync.Option) (*differ.Plan, error)

	// Sync reconciles the repository's labels with the desired set.
	Sync(ctx context.Context, opts ...pkgsync.Option) (*pkgsync.Result, error)

	// Labels returns the labels currently on the repository, sorted by name.
	Labels(ctx context.Context) ([]labels.Label, error)

	// Repository returns the owner/repo slug the client is bound to.
	Repository() string
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	source  Source
	logger  *zerolog.Logger
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	c := &client{
		options: defaults(),
	}

	if err := c.options.apply(opts...); err != nil {
		return nil, err
	}

	// A custom source takes priority; otherwise the client needs a
	// repository to build the GitHub-backed source.
	switch {
	case c.options.source != nil:
		c.source = c.options.source
	case c.options.owner == "" || c.options.repo == "":
		return nil, &errors.ValidationError{
			Field:   "Repository",
			Message: "owner and repository are required",
		}
	default:
		ghOpts := []github.Option{
			github.WithEndpoint(c.options.endpoint),
		}
		if c.options.httpClient != nil {
			ghOpts = append(ghOpts, github.WithHTTPClient(c.options.httpClient))
		}
		c.source = github.NewClient(c.options.owner, c.options.repo, c.options.token, ghOpts...)
	}

	c.logger = c.options.logger
	if c.logger == nil {
		c.logger = logging.Default()
	}

	return c, nil
}

// Repository returns the owner/repo slug the client is bound to, or an
// empty string when a custom source carries no repository.
func (c *client) Repository() string {
	if c.options.owner == "" && c.options.repo == "" {
		return ""
	}
	return c.options.owner + "/" + c.options.repo
}

// Labels returns the labels currently on the repository, sorted by name.
func (c *client) Labels(ctx context.Context) ([]labels.Label, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, c.logger)

	list, err := c.source.List(ctx)
	if err != nil {
		return nil, &errors.SyncError{Repository: c.Repository(), Err: err}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}
