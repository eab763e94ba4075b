// Package errors provides domain-specific error types for spp-ctl.
//
// This package defines structured errors with error codes, so the API layer can
// map every failure onto an HTTP status without inspecting message text.
package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeMissingKey indicates a required key is absent from a request body.
	ErrCodeMissingKey ErrorCode = "MISSING_KEY"

	// ErrCodeInvalidValue indicates a key is present but its value is rejected.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"

	// ErrCodeInvalidBody indicates the request body is not a JSON object.
	ErrCodeInvalidBody ErrorCode = "INVALID_BODY"

	// ErrCodeWorkerNotFound indicates the worker id is unknown to the registry
	// or belongs to a worker of another type.
	ErrCodeWorkerNotFound ErrorCode = "WORKER_NOT_FOUND"

	// ErrCodeWorkerCommand indicates the worker rejected a command.
	ErrCodeWorkerCommand ErrorCode = "WORKER_COMMAND"

	// ErrCodeWorkerChannel indicates the channel to the worker failed.
	ErrCodeWorkerChannel ErrorCode = "WORKER_CHANNEL"

	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
//
// Key and Value are only set for MISSING_KEY and INVALID_VALUE errors.
type Error struct {
	Code    ErrorCode
	Message string
	Key     string
	Value   any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// MissingKey creates the error reported when a required key is absent.
func MissingKey(key string) *Error {
	return &Error{
		Code:    ErrCodeMissingKey,
		Message: fmt.Sprintf("key(%s) required.", key),
		Key:     key,
	}
}

// InvalidValue creates the error reported when a key holds a rejected value.
func InvalidValue(key string, value any) *Error {
	return &Error{
		Code:    ErrCodeInvalidValue,
		Message: fmt.Sprintf("invalid key(%s): %s.", key, FormatValue(value)),
		Key:     key,
		Value:   value,
	}
}

// NewInvalidBodyError creates an error for a request body that cannot be decoded.
func NewInvalidBodyError(cause error) *Error {
	return Wrap(ErrCodeInvalidBody, "invalid request body", cause)
}

// WorkerNotFound creates the error reported for an unknown or mistyped worker id.
func WorkerNotFound(id int) *Error {
	return New(ErrCodeWorkerNotFound, fmt.Sprintf("sec_id %d not found.", id))
}

// PrimaryNotFound creates the error reported when no primary is registered.
func PrimaryNotFound() *Error {
	return New(ErrCodeWorkerNotFound, "primary not found.")
}

// NewWorkerCommandError creates an error for a command the worker rejected.
func NewWorkerCommandError(message string) *Error {
	return New(ErrCodeWorkerCommand, "command error: "+message)
}

// NewWorkerChannelError creates an error for a failed exchange with a worker.
func NewWorkerChannelError(message string, cause error) *Error {
	return Wrap(ErrCodeWorkerChannel, message, cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}

// CodeOf returns the code of a domain error, or ErrCodeInternal for any other error.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrCodeInternal
}

// FormatValue renders a rejected value for an error message. Strings are
// printed as-is, everything else as compact JSON.
func FormatValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}
