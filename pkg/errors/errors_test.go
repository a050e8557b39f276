// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, classification and user errors

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/kbcomponent/pkg/errors"
)

type rawPayload string

func (p rawPayload) MarshalJSON() ([]byte, error) { return []byte(p), nil }

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_action_error",
			code:    errors.ErrUnknownAction,
			message: "action not registered",
			wantStr: "[UNKNOWN_ACTION] action not registered",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrStateRead, "cannot read %s", "in/state.json")

		if err.Wrapped != baseErr {
			t.Error("Wrapf() should preserve wrapped error")
		}

		wantStr := "[STATE_READ] cannot read in/state.json: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnknownAction, "unknown").
		WithDetail("action", "testConnection")

	if err.Details["action"] != "testConnection" {
		t.Errorf("WithDetail() action = %v", err.Details["action"])
	}
	if got := errors.GetErrorDetails(err)["action"]; got != "testConnection" {
		t.Errorf("GetErrorDetails() action = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrReservedAction, "error 1")
	err2 := errors.New(errors.ErrReservedAction, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"component_error", errors.New(errors.ErrConfigLoad, "x"), errors.ErrConfigLoad},
		{"wrapped_component_error", fmt.Errorf("outer: %w", errors.New(errors.ErrEncode, "x")), errors.ErrEncode},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"reserved_action", errors.New(errors.ErrReservedAction, "x"), true},
		{"unknown_action", errors.New(errors.ErrUnknownAction, "x"), true},
		{"not_implemented", errors.New(errors.ErrNotImplemented, "x"), true},
		{"config_load", errors.New(errors.ErrConfigLoad, "x"), true},
		{"state_write", errors.New(errors.ErrStateWrite, "x"), false},
		{"user_error", errors.User("x"), false},
		{"nil_error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsConfiguration(tt.err); got != tt.expected {
				t.Errorf("IsConfiguration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserError(t *testing.T) {
	t.Run("message_is_plain", func(t *testing.T) {
		err := errors.User("boom")
		if err.Error() != "boom" {
			t.Errorf("Error() = %q, want %q", err.Error(), "boom")
		}
	})

	t.Run("formatted_message", func(t *testing.T) {
		err := errors.Userf("missing %s", "table")
		if err.Error() != "missing table" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("payload_used_without_message", func(t *testing.T) {
		err := errors.User("").WithPayload(rawPayload(`{"status":"error"}`))
		if err.Error() != `{"status":"error"}` {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("message_wins_over_payload", func(t *testing.T) {
		err := errors.User("failed").WithPayload(rawPayload(`{"status":"error"}`))
		if err.Error() != "failed" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("detected_through_wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", errors.User("boom"))
		if !errors.IsUserReported(wrapped) {
			t.Error("IsUserReported() should see through wrapping")
		}
		userErr, ok := errors.AsUserError(wrapped)
		if !ok || userErr.Message != "boom" {
			t.Errorf("AsUserError() = %v, %v", userErr, ok)
		}
	})

	t.Run("component_error_is_not_user_reported", func(t *testing.T) {
		if errors.IsUserReported(errors.New(errors.ErrInternal, "x")) {
			t.Error("ComponentError must not be user reported")
		}
	})
}
