// Package github provides a label client for the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/agentstation/labelsync/internal/transport"
	"github.com/agentstation/labelsync/pkg/constants"
	"github.com/agentstation/labelsync/pkg/errors"
	"github.com/agentstation/labelsync/pkg/labels"
	"github.com/agentstation/labelsync/pkg/logging"
)

// labelResponse mirrors the GitHub API label object. Only the fields the
// differ compares are decoded.
type labelResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// createRequest is the payload for creating a label.
type createRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// updateRequest is the payload for updating a label. The label is addressed
// through the URL path, so only the color changes.
type updateRequest struct {
	Color string `json:"color"`
}

// Client manages labels for a single repository through the GitHub API.
type Client struct {
	transport *transport.Client
	endpoint  string
	host      string
	owner     string
	repo      string
}

// Option configures the GitHub client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint, e.g. for GitHub Enterprise.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = strings.TrimSuffix(endpoint, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.transport.SetHTTPClient(httpClient)
	}
}

// NewClient creates a label client for owner/repo. An empty token leaves
// requests anonymous, which works for listing public repositories only.
func NewClient(owner, repo, token string, opts ...Option) *Client {
	var auth transport.Authenticator = &transport.BearerAuth{}
	if token == "" {
		auth = &transport.NoAuth{}
	}

	c := &Client{
		transport: transport.New(auth, token),
		endpoint:  constants.DefaultEndpoint,
		owner:     owner,
		repo:      repo,
	}
	for _, opt := range opts {
		opt(c)
	}

	if u, err := url.Parse(c.endpoint); err == nil {
		c.host = u.Host
	}

	return c
}

// Repository returns the owner/repo slug this client is bound to.
func (c *Client) Repository() string {
	return c.owner + "/" + c.repo
}

// List retrieves every label in the repository, following pagination until
// the API reports no further pages.
func (c *Client) List(ctx context.Context) ([]labels.Label, error) {
	logger := logging.FromContext(ctx)

	var all []labels.Label
	pageURL := fmt.Sprintf("%s?per_page=%d", c.labelsURL(), constants.DefaultPageSize)
	for pageURL != "" {
		resp, err := c.transport.Get(ctx, pageURL)
		if err != nil {
			return nil, c.requestError(pageURL, err)
		}

		// The Link header must be read before DecodeResponse closes the body.
		next := nextPageURL(resp.Header.Get("Link"))

		var page []labelResponse
		if err := transport.DecodeResponse(resp, &page, http.StatusOK); err != nil {
			return nil, err
		}
		for _, l := range page {
			all = append(all, labels.Label{Name: l.Name, Color: l.Color})
		}

		pageURL = next
	}

	logger.Debug().
		Str("repo", c.Repository()).
		Int("count", len(all)).
		Msg("Listed repository labels")

	return all, nil
}

// Create adds a new label to the repository.
func (c *Client) Create(ctx context.Context, label labels.Label) error {
	resp, err := c.transport.Post(ctx, c.labelsURL(), createRequest{
		Name:  label.Name,
		Color: label.Color,
	})
	if err != nil {
		return c.requestError(c.labelsURL(), err)
	}
	if err := transport.ExpectStatus(resp, http.StatusCreated); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("label", label.Name).
		Str("color", label.Color).
		Msg("Created label")

	return nil
}

// Update changes the color of an existing label.
func (c *Client) Update(ctx context.Context, label labels.Label) error {
	resp, err := c.transport.Patch(ctx, c.labelURL(label.Name), updateRequest{
		Color: label.Color,
	})
	if err != nil {
		return c.requestError(c.labelURL(label.Name), err)
	}
	if err := transport.ExpectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("label", label.Name).
		Str("color", label.Color).
		Msg("Updated label")

	return nil
}

// Delete removes a label from the repository.
func (c *Client) Delete(ctx context.Context, name string) error {
	resp, err := c.transport.Delete(ctx, c.labelURL(name))
	if err != nil {
		return c.requestError(c.labelURL(name), err)
	}
	if err := transport.ExpectStatus(resp, http.StatusNoContent); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("label", name).
		Msg("Deleted label")

	return nil
}

// labelsURL returns the collection endpoint for the repository's labels.
func (c *Client) labelsURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/labels", c.endpoint, c.owner, c.repo)
}

// labelURL returns the endpoint for a single label. Names are escaped
// since labels may contain spaces, slashes, and unicode.
func (c *Client) labelURL(name string) string {
	return c.labelsURL() + "/" + url.PathEscape(name)
}

// requestError wraps a transport failure that produced no HTTP response.
func (c *Client) requestError(endpoint string, err error) error {
	return &errors.APIError{
		Host:     c.host,
		Endpoint: endpoint,
		Message:  "request failed",
		Err:      err,
	}
}

// nextPageURL extracts the rel="next" target from a Link header. GitHub
// paginates label listings at per_page items per response.
func nextPageURL(header string) string {
	for _, link := range strings.Split(header, ",") {
		parts := strings.Split(link, ";")
		if len(parts) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(parts[0]), "<>")
		for _, param := range parts[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return target
			}
		}
	}
	return ""
}
