package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no usable response was received (network down,
	// DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the access credential is missing, invalid or
	// expired. The gateway never retries or refreshes; the caller decides
	// what to do with the session.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response carrying the server-provided message, or a
// generic fallback when the body had none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}
