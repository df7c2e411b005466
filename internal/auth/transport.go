package auth

import "context"

// Request describes a single call to the Strata API.
type Request struct {
	Method  string
	Path    string
	BaseURL string
	Params  map[string]string
	Headers map[string]string
	Body    interface{}
}

// Response is the raw result of an executed request.
type Response struct {
	Status int
	Body   []byte
}

// Transport executes requests against the remote API. Implementations own
// retry and timeout policy; the Manager treats returned errors as opaque
// and surfaces them unmodified.
type Transport interface {
	Execute(ctx context.Context, req Request) (*Response, error)
}
