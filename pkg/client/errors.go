package client

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidBaseURL is returned when the base URL is not absolute.
	ErrInvalidBaseURL = errors.New("airnow client: invalid base URL")
	// ErrNilHTTPClient indicates a nil HTTP client was provided.
	ErrNilHTTPClient = errors.New("airnow client: http client cannot be nil")
	// ErrRequestFailed matches every *RequestError via errors.Is.
	ErrRequestFailed = errors.New("airnow client: request failed")
)

// RequestError represents a transport failure or a non-success HTTP status.
// URL never contains the API key.
type RequestError struct {
	Status int
	URL    string
	Detail string
	Err    error
}

func (e *RequestError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("airnow client: request to %s failed: %v", e.URL, e.Err)
	}
	if e.Detail == "" {
		return fmt.Sprintf("airnow client: request to %s failed: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("airnow client: request to %s failed: status %d (%s)", e.URL, e.Status, e.Detail)
}

func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is ErrRequestFailed.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// Temporary reports whether the failure is worth retrying by the caller.
// The client itself never retries.
func (e *RequestError) Temporary() bool {
	if e == nil {
		return false
	}
	return e.Err != nil || e.Status >= 500
}
