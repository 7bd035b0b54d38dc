// Package errors provides typed errors for the application
package errors

import stderrors "errors"

// ErrorType represents the type of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeUnavailable
	ErrorTypeInternal
)

// String returns a label suitable for logs and metrics
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// baseError is the base implementation for all error types
type baseError struct {
	msg   string
	cause error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ValidationError represents malformed input
type ValidationError struct {
	baseError
}

// NewValidationError creates a new ValidationError
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{baseError{msg: msg}}
}

// NotFoundError represents a missing entity
type NotFoundError struct {
	baseError
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{baseError{msg: msg}}
}

// UnavailableError represents a failing upstream (network, timeout, bad status)
type UnavailableError struct {
	baseError
}

// NewUnavailableError creates a new UnavailableError wrapping cause
func NewUnavailableError(msg string, cause error) *UnavailableError {
	return &UnavailableError{baseError{msg: msg, cause: cause}}
}

// InternalError represents an unexpected failure
type InternalError struct {
	baseError
}

// NewInternalError creates a new InternalError wrapping cause
func NewInternalError(msg string, cause error) *InternalError {
	return &InternalError{baseError{msg: msg, cause: cause}}
}

// IsValidationError checks if error is a ValidationError
func IsValidationError(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsNotFoundError checks if error is a NotFoundError
func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

// IsUnavailableError checks if error is an UnavailableError
func IsUnavailableError(err error) bool {
	var target *UnavailableError
	return stderrors.As(err, &target)
}

// IsInternalError checks if error is an InternalError
func IsInternalError(err error) bool {
	var target *InternalError
	return stderrors.As(err, &target)
}

// TypeOf classifies err. Unknown errors are internal.
func TypeOf(err error) ErrorType {
	switch {
	case IsValidationError(err):
		return ErrorTypeValidation
	case IsNotFoundError(err):
		return ErrorTypeNotFound
	case IsUnavailableError(err):
		return ErrorTypeUnavailable
	default:
		return ErrorTypeInternal
	}
}
