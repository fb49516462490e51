// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-pool.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrClosed is returned by operations on a pool or access order that
	// has been torn down.
	ErrClosed = fmt.Errorf("pool is closed")
	// ErrUnknownOrder is returned at construction when the access-order
	// kind is not one of the recognized variants.
	ErrUnknownOrder = fmt.Errorf("unrecognized access order")
	// ErrInvalidArgument is returned at construction for out-of-range
	// capacity or a nil factory.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	// ErrNoRental reports a Return with no rental outstanding. The handed
	// instance is left untouched; ownership stays with the caller.
	ErrNoRental = fmt.Errorf("return without outstanding rental")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeUnknownOrder
	ErrCodeClosed
	ErrCodeNoRental
	ErrCodeFactory
	ErrCodeRelease
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WrapError creates a structured error around an underlying cause.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
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
