package remote

import (
	"fmt"
	"time"
)

// The error taxonomy a real content service would surface. The simulated
// client never raises NoConnection, ServerError, or Timeout today; InvalidData
// guards the payload-decode path and would fire on a malformed response.

// ErrNoConnection indicates no network connection is available.
type ErrNoConnection struct {
	Err error
}

func (e *ErrNoConnection) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no internet connection available: %v", e.Err)
	}
	return "no internet connection available"
}

func (e *ErrNoConnection) Unwrap() error { return e.Err }

// ErrServerError indicates the content service failed.
type ErrServerError struct {
	Status int
	Err    error
}

func (e *ErrServerError) Error() string {
	return fmt.Sprintf("server error occurred (status %d): %v", e.Status, e.Err)
}

func (e *ErrServerError) Unwrap() error { return e.Err }

// ErrInvalidData indicates the response payload could not be decoded or
// failed schema validation.
type ErrInvalidData struct {
	Err error
}

func (e *ErrInvalidData) Error() string {
	return fmt.Sprintf("invalid data received: %v", e.Err)
}

func (e *ErrInvalidData) Unwrap() error { return e.Err }

// ErrTimeout indicates the request exceeded its deadline.
type ErrTimeout struct {
	After time.Duration
	Err   error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("request timed out after %s: %v", e.After, e.Err)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }
