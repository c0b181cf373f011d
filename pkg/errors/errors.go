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

	// Filesystem errors
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrBackup     ErrorCode = "BACKUP"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Toolchain errors
	ErrToolMissing   ErrorCode = "TOOL_MISSING"
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"

	// pyproject.toml errors
	ErrPyprojectParse ErrorCode = "PYPROJECT_PARSE"
)

// PystackError represents a structured error with code and details
type PystackError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PystackError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PystackError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PystackError) Is(target error) bool {
	var targetErr *PystackError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PystackError with the given code and message
func New(code ErrorCode, message string) *PystackError {
	return &PystackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PystackError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PystackError {
	return &PystackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PystackError
func Wrap(err error, code ErrorCode, message string) *PystackError {
	if err == nil {
		return nil
	}
	return &PystackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PystackError {
	if err == nil {
		return nil
	}
	return &PystackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PystackError) WithDetail(key string, value interface{}) *PystackError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not PystackErrors
func GetCode(err error) ErrorCode {
	var perr *PystackError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}

// IsCode checks whether the error carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
