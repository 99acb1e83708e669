// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types for the futurestream library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrStreamClosed    = fmt.Errorf("stream is closed")
	ErrAlreadyReading  = fmt.Errorf("stream is already reading")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// StreamError is the single error kind produced by reactor-level
// failures: write submission, write completion, read start, read stop.
// Code carries the reactor's negative status verbatim.
type StreamError struct {
	Op   string // "write", "read_start", "read_stop", "read", "close"
	Code int
}

// Error implements the error interface.
func (e *StreamError) Error() string {
	return fmt.Sprintf("stream %s: status %d", e.Op, e.Code)
}

// NewStreamError creates a StreamError for the given operation and
// reactor status code.
func NewStreamError(op string, code int) *StreamError {
	return &StreamError{Op: op, Code: code}
}

// IsEOF reports whether a status code is the clean end-of-stream signal.
func IsEOF(status int) bool {
	return status == StatusEOF
}
