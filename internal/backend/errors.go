package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks requests that never produced an HTTP response.
	ErrTransport = errors.New("backend unreachable")
	// ErrDecode marks responses whose body is not the expected JSON.
	ErrDecode = errors.New("unreadable backend response")
	// ErrRejected marks application-level failures: {success:false}, a missing
	// access token or a non-2xx status.
	ErrRejected = errors.New("backend rejected the request")
)

type Error struct {
	Op      string
	Status  int
	Message string
	Kind    error
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// MessageOf returns the backend's human readable message carried by err, if any.
func MessageOf(err error) string {
	var backendErr *Error
	if errors.As(err, &backendErr) {
		return backendErr.Message
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, 0 when there was none.
func StatusOf(err error) int {
	var backendErr *Error
	if errors.As(err, &backendErr) {
		return backendErr.Status
	}
	return 0
}
