// Package errors provides the coded error type used across omni.
//
// Every fatal condition the up/down pipeline can detect carries an
// ErrorCode so that tests and callers can match on the category without
// parsing messages.
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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigType  ErrorCode = "CONFIG_TYPE"
	ErrUserConfig  ErrorCode = "USER_CONFIG"

	// Operation descriptor errors
	ErrInvalidOperation     ErrorCode = "INVALID_OPERATION"
	ErrUnknownOperation     ErrorCode = "UNKNOWN_OPERATION"
	ErrInvalidOperationType ErrorCode = "INVALID_OPERATION_TYPE"
	ErrOperationConfig      ErrorCode = "OPERATION_CONFIG"

	// Invocation errors
	ErrUnknownDirection ErrorCode = "UNKNOWN_DIRECTION"
	ErrInvalidFlag      ErrorCode = "INVALID_FLAG"
	ErrTooManyArgs      ErrorCode = "TOO_MANY_ARGS"
	ErrNotInRepo        ErrorCode = "NOT_IN_REPO"

	// External tool errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
)

// OmniError represents a structured error with code and details
type OmniError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OmniError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OmniError) Unwrap() error {
	return e.Wrapped
}

// Is matches any OmniError with the same code
func (e *OmniError) Is(target error) bool {
	var targetErr *OmniError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OmniError with the given code and message
func New(code ErrorCode, message string) *OmniError {
	return &OmniError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OmniError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OmniError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an OmniError
func Wrap(err error, code ErrorCode, message string) *OmniError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OmniError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *OmniError) WithDetail(key string, value interface{}) *OmniError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var omniErr *OmniError
	if errors.As(err, &omniErr) {
		return omniErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OmniError
func GetErrorCode(err error) ErrorCode {
	var omniErr *OmniError
	if errors.As(err, &omniErr) {
		return omniErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OmniError
func GetErrorDetails(err error) map[string]interface{} {
	var omniErr *OmniError
	if errors.As(err, &omniErr) {
		return omniErr.Details
	}
	return nil
}

// UserMessage renders err for humans: the outermost OmniError message,
// followed by the wrapped cause when there is one, without error codes.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var omniErr *OmniError
	if !errors.As(err, &omniErr) {
		return err.Error()
	}
	if omniErr.Wrapped != nil {
		return fmt.Sprintf("%s: %s", omniErr.Message, UserMessage(omniErr.Wrapped))
	}
	return omniErr.Message
}
