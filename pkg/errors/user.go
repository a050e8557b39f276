package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UserError is a failure a handler raises on purpose: failed validation,
// missing input and similar conditions the caller is expected to fix.
// Payload optionally carries a result value describing the failure.
type UserError struct {
	Message string
	Payload json.Marshaler
}

// Error returns the message, or the encoded payload when there is no message.
func (e *UserError) Error() string {
	if e.Message != "" || e.Payload == nil {
		return e.Message
	}
	data, err := e.Payload.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("unencodable payload: %v", err)
	}
	return string(data)
}

// User creates a UserError with the given message
func User(message string) *UserError {
	return &UserError{Message: message}
}

// Userf creates a UserError with a formatted message
func Userf(format string, args ...interface{}) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// WithPayload attaches a result value to the error
func (e *UserError) WithPayload(payload json.Marshaler) *UserError {
	e.Payload = payload
	return e
}

// AsUserError returns the UserError in err's chain, if any
func AsUserError(err error) (*UserError, bool) {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr, true
	}
	return nil, false
}

// IsUserReported checks if err is, or wraps, a UserError
func IsUserReported(err error) bool {
	_, ok := AsUserError(err)
	return ok
}
