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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Name resolution errors. These are always user input errors and are
	// reported with the set of valid alternatives.
	ErrUnresolvedReference ErrorCode = "UNRESOLVED_REFERENCE"
	ErrAmbiguousReference  ErrorCode = "AMBIGUOUS_REFERENCE"

	// Flag errors
	ErrDisallowedFlag ErrorCode = "DISALLOWED_FLAG"
	ErrMissingFlag    ErrorCode = "MISSING_FLAG"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Transport errors
	ErrConnect  ErrorCode = "CONNECT"
	ErrSend     ErrorCode = "SEND"
	ErrProtocol ErrorCode = "PROTOCOL"
)

// Detail keys shared between the packages that raise errors and the CLI
// that reports them.
const (
	DetailKind    = "kind"
	DetailInput   = "input"
	DetailOptions = "options"
	DetailFlag    = "flag"
	DetailOp      = "operation"
)

// LedctlError represents a structured error with code and details
type LedctlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LedctlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LedctlError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LedctlError) Is(target error) bool {
	var targetErr *LedctlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LedctlError with the given code and message
func New(code ErrorCode, message string) *LedctlError {
	return &LedctlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LedctlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LedctlError {
	return &LedctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LedctlError
func Wrap(err error, code ErrorCode, message string) *LedctlError {
	if err == nil {
		return nil
	}
	return &LedctlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LedctlError {
	if err == nil {
		return nil
	}
	return &LedctlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LedctlError) WithDetail(key string, value interface{}) *LedctlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LedctlError) WithDetails(details map[string]interface{}) *LedctlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ledErr *LedctlError
	if errors.As(err, &ledErr) {
		return ledErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LedctlError
func GetErrorCode(err error) ErrorCode {
	var ledErr *LedctlError
	if errors.As(err, &ledErr) {
		return ledErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LedctlError
func GetErrorDetails(err error) map[string]interface{} {
	var ledErr *LedctlError
	if errors.As(err, &ledErr) {
		return ledErr.Details
	}
	return nil
}

// DetailString returns a string detail, or "" when absent or of another type.
func DetailString(err error, key string) string {
	s, _ := GetErrorDetails(err)[key].(string)
	return s
}

// DetailStrings returns a []string detail, or nil when absent.
func DetailStrings(err error, key string) []string {
	s, _ := GetErrorDetails(err)[key].([]string)
	return s
}

// As is the standard library errors.As, so callers need a single errors import.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
