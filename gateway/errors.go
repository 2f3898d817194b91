package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors classifying remote API failures. Callers match with
// errors.Is; the cache layer passes them upward without interpreting them.
var (
	// ErrNetwork means no usable response arrived: DNS failure, refused
	// connection, timeout, or a canceled context.
	ErrNetwork = errors.New("catalog: network failure")

	// ErrUnauthorized means the server rejected the credential (or its
	// absence) on an authenticated endpoint.
	ErrUnauthorized = errors.New("catalog: unauthorized")

	// ErrValidation means the server rejected the payload's shape or
	// content. Client-side input validation surfaces through the same
	// sentinel so callers have one rule to match.
	ErrValidation = errors.New("catalog: validation rejected")

	// ErrNotFound means the target id does not exist on the server.
	ErrNotFound = errors.New("catalog: not found")

	// ErrUnknown covers every unclassified server response.
	ErrUnknown = errors.New("catalog: unexpected server response")
)

// Error wraps a classified failure with request context.
type Error struct {
	Method string
	Path   string
	Status int    // HTTP status, 0 when no response arrived
	Detail string // server-provided message, if any
	Err    error  // one of the sentinels above
}

func (e *Error) Error() string {
	if e.Status == 0 {
		if e.Detail != "" {
			return fmt.Sprintf("%s %s: %v: %s", e.Method, e.Path, e.Err, e.Detail)
		}
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: %v (status %d): %s", e.Method, e.Path, e.Err, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s %s: %v (status %d)", e.Method, e.Path, e.Err, e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify maps an HTTP status outside the 2xx range to a taxonomy
// sentinel.
func classify(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrUnknown
	}
}
