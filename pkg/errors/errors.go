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

	// Theme errors
	ErrUnknownTheme ErrorCode = "UNKNOWN_THEME"
	ErrThemeLoad    ErrorCode = "THEME_LOAD"
	ErrThemeParse   ErrorCode = "THEME_PARSE"

	// Collaborator boundary errors
	ErrRender ErrorCode = "RENDER"
	ErrInput  ErrorCode = "INPUT"
)

// ConsoleError represents a structured error with code and details
type ConsoleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ConsoleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ConsoleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ConsoleError) Is(target error) bool {
	var targetErr *ConsoleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ConsoleError with the given code and message
func New(code ErrorCode, message string) *ConsoleError {
	return &ConsoleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ConsoleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ConsoleError {
	return &ConsoleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ConsoleError
func Wrap(err error, code ErrorCode, message string) *ConsoleError {
	if err == nil {
		return nil
	}
	return &ConsoleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ConsoleError {
	if err == nil {
		return nil
	}
	return &ConsoleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ConsoleError) WithDetail(key string, value interface{}) *ConsoleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ConsoleError) WithDetails(details map[string]interface{}) *ConsoleError {
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
	var consoleErr *ConsoleError
	if errors.As(err, &consoleErr) {
		return consoleErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ConsoleError
func GetErrorCode(err error) ErrorCode {
	var consoleErr *ConsoleError
	if errors.As(err, &consoleErr) {
		return consoleErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ConsoleError
func GetErrorDetails(err error) map[string]interface{} {
	var consoleErr *ConsoleError
	if errors.As(err, &consoleErr) {
		return consoleErr.Details
	}
	return nil
}
