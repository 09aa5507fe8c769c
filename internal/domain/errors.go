package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks missing or malformed inputs detected before any network call.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgument returns an error wrapping ErrInvalidArgument with msg as its text.
func InvalidArgument(msg string) error {
	return &invalidArgumentError{msg: msg}
}

type invalidArgumentError struct{ msg string }

func (e *invalidArgumentError) Error() string { return e.msg }

func (e *invalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// APIError is a failed or malformed response from an external service.
// Message is meant to be shown to the user as-is.
type APIError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// Detailed includes the service name, status code and cause for logs.
func (e *APIError) Detailed() string {
	s := fmt.Sprintf("service=%s code=%d msg=%q", e.Service, e.StatusCode, e.Message)
	if e.Err != nil {
		s += fmt.Sprintf(" cause=%v", e.Err)
	}
	return s
}

// IsAPIError reports whether err carries an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
