// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/ledctl/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unresolved_reference",
			code:    errors.ErrUnresolvedReference,
			message: "invalid operation: foo",
			wantStr: "[UNRESOLVED_REFERENCE] invalid operation: foo",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "Server IP must be set",
			wantStr: "[INVALID_INPUT] Server IP must be set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
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

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDisallowedFlag, "Flag %s not allowed for operation %s", "delay", "end")
	if err.Message != "Flag delay not allowed for operation end" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("connection refused")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConnect, "failed to connect")

		if err.Code != errors.ErrConnect {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrConnect)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CONNECT] failed to connect: connection refused"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrapf(nil, errors.ErrSend, "failed to send %s", "DATA")
		if err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrAmbiguousReference, "ambiguous").
		WithDetail(errors.DetailInput, "c").
		WithDetails(map[string]interface{}{
			errors.DetailKind:    "operation",
			errors.DetailOptions: []string{"completion", "config"},
		})

	if got := errors.DetailString(err, errors.DetailInput); got != "c" {
		t.Errorf("DetailString(input) = %q, want %q", got, "c")
	}
	if got := errors.DetailString(err, errors.DetailKind); got != "operation" {
		t.Errorf("DetailString(kind) = %q, want %q", got, "operation")
	}
	if got := errors.DetailStrings(err, errors.DetailOptions); len(got) != 2 {
		t.Errorf("DetailStrings(options) = %v, want 2 entries", got)
	}
	if got := errors.DetailString(stderrors.New("plain"), errors.DetailInput); got != "" {
		t.Errorf("DetailString on plain error = %q, want empty", got)
	}
	if got := errors.DetailStrings(err, errors.DetailInput); got != nil {
		t.Errorf("DetailStrings on string detail = %v, want nil", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnresolvedReference, "error 1")
	err2 := errors.New(errors.ErrUnresolvedReference, "error 2")
	err3 := errors.New(errors.ErrAmbiguousReference, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with LedctlError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrMissingFlag, "missing"),
			code:     errors.ErrMissingFlag,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrMissingFlag, "missing"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrConfigParse, "bad toml"),
			code:     errors.ErrConfigParse,
			expected: true,
		},
		{
			name:     "non_ledctl_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "ledctl_error",
			err:      errors.New(errors.ErrProtocol, "bad frame"),
			expected: errors.ErrProtocol,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrConfigParse, "cannot parse file")
	configErr := errors.Wrap(readErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var ledErr *errors.LedctlError
		if stderrors.As(configErr.Unwrap(), &ledErr) {
			if !errors.IsErrorCode(ledErr, errors.ErrConfigParse) {
				t.Error("Middle error should have ErrConfigParse code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
