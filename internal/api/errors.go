package api

import (
	"errors"
	"fmt"
)

// ErrRemote is the single failure kind of this client: the call did not
// reach the server or the server answered with a non-2xx status.
var ErrRemote = errors.New("remote call failed")

// StatusError is returned when the server answers outside the 2xx range.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string // truncated response body, may be empty
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *StatusError) Unwrap() error { return ErrRemote }

// transportError wraps a network or decoding failure.
type transportError struct {
	method, path string
	err          error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.method, e.path, e.err)
}

func (e *transportError) Unwrap() []error { return []error{ErrRemote, e.err} }
