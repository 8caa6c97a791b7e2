// Package errors provides structured error values for the treemark application.
//
// Every fallible treemark operation reports its outcome as a code plus an
// optional diagnostic message. The code set is small and closed; callers
// branch on codes, not on message text.
//
// # Error Codes
//
//   - INVALID_PARAMETER: a nil reference or empty value where a concrete one is required
//   - LOOP_DETECTED: an attachment that would make a node reachable from itself
//   - NOT_IMPLEMENTED: a declared-but-unimplemented operation (the markup serializer)
//   - INVALID_MANIFEST, INVALID_FORMAT, FILE_NOT_FOUND, RENDER_FAILED: CLI-facing failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLoopDetected, "child node already contains origin node")
//	if errors.Is(err, errors.ErrCodeLoopDetected) {
//	    // reject the attachment
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "render %s", path)
//
// The message travels inside the returned value; there is no global error
// state to query afterwards.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different failure categories.
const (
	// Tree operation outcomes
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"
	ErrCodeLoopDetected     Code = "LOOP_DETECTED"
	ErrCodeNotImplemented   Code = "NOT_IMPLEMENTED"

	// Input failures
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Output failures
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Unexpected internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
