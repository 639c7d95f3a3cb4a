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
	ErrUnknownFormat ErrorCode = "UNKNOWN_FORMAT"
	ErrInvalidColor  ErrorCode = "INVALID_COLOR"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Document errors
	ErrDocumentRead   ErrorCode = "DOCUMENT_READ"
	ErrDocumentWrite  ErrorCode = "DOCUMENT_WRITE"
	ErrDocumentDecode ErrorCode = "DOCUMENT_DECODE"
	ErrDocumentEncode ErrorCode = "DOCUMENT_ENCODE"

	// Output errors
	ErrRender ErrorCode = "RENDER"
	ErrScreen ErrorCode = "SCREEN"
)

// RichtextError represents a structured error with code and details
type RichtextError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RichtextError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RichtextError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RichtextError) Is(target error) bool {
	var targetErr *RichtextError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RichtextError with the given code and message
func New(code ErrorCode, message string) *RichtextError {
	return &RichtextError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RichtextError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RichtextError {
	return &RichtextError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RichtextError.
// A nil err yields a nil *RichtextError, so check err before returning the
// result through an error interface.
func Wrap(err error, code ErrorCode, message string) *RichtextError {
	if err == nil {
		return nil
	}
	return &RichtextError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RichtextError {
	if err == nil {
		return nil
	}
	return &RichtextError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RichtextError) WithDetail(key string, value interface{}) *RichtextError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RichtextError) WithDetails(details map[string]interface{}) *RichtextError {
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
	var richErr *RichtextError
	if errors.As(err, &richErr) {
		return richErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RichtextError
func GetErrorCode(err error) ErrorCode {
	var richErr *RichtextError
	if errors.As(err, &richErr) {
		return richErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RichtextError
func GetErrorDetails(err error) map[string]interface{} {
	var richErr *RichtextError
	if errors.As(err, &richErr) {
		return richErr.Details
	}
	return nil
}
