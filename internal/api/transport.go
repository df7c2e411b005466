package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/strata-experimental/strata-cli/internal/auth"
)

const (
	maxRetries      = 3
	baseRetryDelay  = 100 * time.Millisecond
	maxRetryDelay   = 5 * time.Second
	retryableStatus = 429 // Too Many Requests
)

// APIError is an HTTP failure response surfaced by the transport. It
// carries the status code so callers can branch on it without parsing
// the message text.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed: status %d - %s", e.Status, e.Body)
}

// HTTPTransport executes requests against the Strata API over HTTP. It
// implements auth.Transport and owns the retry policy: network errors
// and 429 responses are retried with exponential backoff.
type HTTPTransport struct {
	httpClient *http.Client
}

// NewHTTPTransport creates an HTTP transport with the given timeout.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout == 0 {
		timeout = 300 * time.Second
	}
	return &HTTPTransport{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Execute performs a single API request and returns the raw response
// body. Responses with status >= 400 are surfaced as errors.
func (t *HTTPTransport) Execute(ctx context.Context, r auth.Request) (*auth.Response, error) {
	url := strings.TrimSuffix(r.BaseURL, "/") + r.Path

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := baseRetryDelay * time.Duration(1<<uint(attempt-1))
			if delay > maxRetryDelay {
				delay = maxRetryDelay
			}

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
				// Continue with retry
			}
		}

		// Build the request fresh per attempt so a consumed body reader
		// never leaks into a retry.
		req, err := t.newRequest(ctx, r, url)
		if err != nil {
			return nil, err
		}

		resp, err := t.httpClient.Do(req)
		if err != nil {
			if attempt == maxRetries {
				return nil, fmt.Errorf("failed to execute request after %d attempts: %w", maxRetries+1, err)
			}
			// Retry on network errors
			continue
		}

		if resp.StatusCode == retryableStatus && attempt < maxRetries {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			// Retry on rate limit
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response body: %w", readErr)
		}

		if resp.StatusCode >= 400 {
			return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
		}

		return &auth.Response{Status: resp.StatusCode, Body: body}, nil
	}

	return nil, fmt.Errorf("failed to execute request after %d attempts", maxRetries+1)
}

// newRequest builds a single HTTP request from the transport-agnostic
// request description.
func (t *HTTPTransport) newRequest(ctx context.Context, r auth.Request, url string) (*http.Request, error) {
	var reqBody io.Reader
	if r.Body != nil {
		jsonData, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	if r.Params != nil {
		q := req.URL.Query()
		for k, v := range r.Params {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	return req, nil
}
