// Package api provides the typed HTTP client for the marketing-automation backend.
// Every operation issues exactly one request and either returns a parsed payload
// or fails with an error from the taxonomy below.
package api

import (
	"errors"
	"fmt"
)

// UnreachableError reports a network-level failure (DNS, connection refused,
// timeout) where no HTTP response was received from the backend.
type UnreachableError struct {
	URL   string
	Cause error
}

func (e *UnreachableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("backend unreachable at %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("backend unreachable at %s", e.URL)
}

func (e *UnreachableError) Unwrap() error {
	return e.Cause
}

// RequestError reports an application-level rejection: a non-2xx status or a
// 2xx response whose body carries success:false. Message preserves the
// server-provided detail whenever the body includes one.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
	Cause      error
}

func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("HTTP status %d", e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Op, msg, e.Cause)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, msg)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// IsUnreachable reports whether err indicates the backend could not be reached
// at all, as opposed to rejecting the request.
func IsUnreachable(err error) bool {
	var ue *UnreachableError
	return errors.As(err, &ue)
}

// ServerMessage extracts the backend-provided failure detail from err, or
// returns fallback when none was preserved.
func ServerMessage(err error, fallback string) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
