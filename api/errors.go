// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types for the nexvec container library. Every checked-path
// violation is reported as one of these, either fatally through Fail or as
// a returned error from the Try* accessors.

package api

import "fmt"

// Sentinel errors used across the library.
var (
	ErrOutOfRange      = fmt.Errorf("index out of range")
	ErrEmptyContainer  = fmt.Errorf("container is empty")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeEmptyContainer
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back to its sentinel so errors.Is works.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeEmptyContainer:
		return ErrEmptyContainer
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
