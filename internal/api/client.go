package api

import (
	"context"
	"time"

	"github.com/strata-experimental/strata-cli/internal/auth"
)

// DefaultAPIURL is the endpoint used when no URL is configured.
const DefaultAPIURL = "https://api.strata.dev"

// Client handles authenticated requests to the Strata API. It couples an
// HTTP transport with the session-managing auth.Manager: the manager
// owns the token lifecycle, the client adds the bearer header to
// resource requests.
type Client struct {
	transport *HTTPTransport

	// Auth is the session manager. Callers drive Login/Logout through
	// it directly.
	Auth *auth.Manager
}

// NewClient creates a new Strata API client.
func NewClient(apiURL string, timeout time.Duration, opts ...auth.Option) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	// Remove trailing slash
	if len(apiURL) > 0 && apiURL[len(apiURL)-1] == '/' {
		apiURL = apiURL[:len(apiURL)-1]
	}

	transport := NewHTTPTransport(timeout)
	return &Client{
		transport: transport,
		Auth:      auth.NewManager(transport, apiURL, opts...),
	}
}

// request makes an authenticated request using the current session.
func (c *Client) request(ctx context.Context, method, path string, body interface{}, params map[string]string) (*auth.Response, error) {
	session := c.Auth.Session()
	if !session.LoggedIn() {
		return nil, auth.ErrNotAuthenticated
	}

	return c.transport.Execute(ctx, auth.Request{
		Method:  method,
		Path:    path,
		BaseURL: session.BaseURL,
		Params:  params,
		Headers: map[string]string{"Authorization": "Bearer " + session.Token},
		Body:    body,
	})
}

// Close closes the HTTP client (no-op for the standard client, but
// implements the closer pattern).
func (c *Client) Close() error {
	return nil
}
