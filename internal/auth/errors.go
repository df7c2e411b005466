package auth

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indicates an API response that did not carry the
// expected {"data": {"token": ...}} envelope.
var ErrMalformedResponse = errors.New("malformed response: missing data.token")

// ErrNotAuthenticated indicates an operation that requires an active
// session was attempted without one.
var ErrNotAuthenticated = errors.New("not authenticated: no active session")

// ParameterError reports a missing required parameter. It is raised
// synchronously, before any transport call, and is never retried.
type ParameterError struct {
	Op   string
	Name string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s(): Parameter `%s` is required", e.Op, e.Name)
}
