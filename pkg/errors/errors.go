package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Action errors
	ErrReservedAction ErrorCode = "RESERVED_ACTION"
	ErrUnknownAction  ErrorCode = "UNKNOWN_ACTION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Data directory errors
	ErrStateRead  ErrorCode = "STATE_READ"
	ErrStateWrite ErrorCode = "STATE_WRITE"

	// Result errors
	ErrEncode ErrorCode = "ENCODE"
)

// configurationCodes are the codes that abort a dispatch before any handler runs.
var configurationCodes = map[ErrorCode]bool{
	ErrReservedAction: true,
	ErrUnknownAction:  true,
	ErrNotImplemented: true,
	ErrConfigLoad:     true,
	ErrConfigParse:    true,
	ErrConfigValid:    true,
}

// ComponentError represents a structured error with code and details
type ComponentError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ComponentError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ComponentError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ComponentError) Is(target error) bool {
	var targetErr *ComponentError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ComponentError with the given code and message
func New(code ErrorCode, message string) *ComponentError {
	return &ComponentError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ComponentError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ComponentError {
	return &ComponentError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ComponentError
func Wrap(err error, code ErrorCode, message string) *ComponentError {
	if err == nil {
		return nil
	}
	return &ComponentError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ComponentError {
	if err == nil {
		return nil
	}
	return &ComponentError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ComponentError) WithDetail(key string, value interface{}) *ComponentError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var componentErr *ComponentError
	if errors.As(err, &componentErr) {
		return componentErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ComponentError
func GetErrorCode(err error) ErrorCode {
	var componentErr *ComponentError
	if errors.As(err, &componentErr) {
		return componentErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ComponentError
func GetErrorDetails(err error) map[string]interface{} {
	var componentErr *ComponentError
	if errors.As(err, &componentErr) {
		return componentErr.Details
	}
	return nil
}

// IsConfiguration reports whether err is a pre-flight configuration error:
// a reserved or unresolvable action, or a configuration that failed to load.
func IsConfiguration(err error) bool {
	var componentErr *ComponentError
	if errors.As(err, &componentErr) {
		return configurationCodes[componentErr.Code]
	}
	return false
}
