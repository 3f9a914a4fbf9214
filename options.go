package labelsync

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/labelsync/pkg/constants"
	"github.com/agentstation/labelsync/pkg/errors"
)

// Option is a function that configures a Client instance.
type Option func(*options) error

// options holds the resolved client configuration.
type options struct {
	owner      string
	repo       string
	token      string
	endpoint   string
	source     Source
	httpClient *http.Client
	logger     *zerolog.Logger
}

// defaults returns the default client configuration.
func defaults() *options {
	return &options{
		endpoint: constants.DefaultEndpoint,
	}
}

// apply applies the given options in order, stopping at the first error.
func (o *options) apply(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// WithRepository binds the client to a repository.
func WithRepository(owner, repo string) Option {
	return func(o *options) error {
		if owner == "" || repo == "" {
			return &errors.ValidationError{
				Field:   "Repository",
				Value:   owner + "/" + repo,
				Message: "owner and repository must both be set",
			}
		}
		o.owner = owner
		o.repo = repo
		return nil
	}
}

// WithToken sets the API token used to authenticate requests. Without a
// token, listing public repositories works but mutations are rejected.
func WithToken(token string) Option {
	return func(o *options) error {
		o.token = token
		return nil
	}
}

// WithEndpoint overrides the API endpoint, e.g. for GitHub Enterprise.
func WithEndpoint(endpoint string) Option {
	return func(o *options) error {
		if endpoint == "" {
			return nil
		}
		u, err := url.Parse(endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &errors.ValidationError{
				Field:   "Endpoint",
				Value:   endpoint,
				Message: "endpoint must be an absolute URL",
			}
		}
		o.endpoint = strings.TrimSuffix(endpoint, "/")
		return nil
	}
}

// WithSource replaces the GitHub-backed label source. Used by tests and
// by callers that target a different forge.
func WithSource(source Source) Option {
	return func(o *options) error {
		o.source = source
		return nil
	}
}

// WithHTTPClient replaces the HTTP client used for API requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) error {
		o.httpClient = httpClient
		return nil
	}
}

// WithLogger sets the logger used for run diagnostics. Runs log at debug
// level, so the default logger stays silent at normal verbosity.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
