// Package errors provides structured error types for Connectoviz.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_MISMATCH: Aligned-sequence length violations
//   - MISSING_*: Required mapping entries absent
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidShape, "matrix must be square, got %dx%d", r, c)
//	if errors.Is(err, errors.ErrCodeInvalidShape) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidShape   Code = "INVALID_SHAPE"   // matrix not square, or size != label count
	ErrCodeShapeMismatch  Code = "SHAPE_MISMATCH"  // group label count != node count
	ErrCodeInvalidInput   Code = "INVALID_INPUT"   // malformed matrix or metadata input
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"  // unknown output format
	ErrCodeInvalidPalette Code = "INVALID_PALETTE" // unknown palette name
	ErrCodeInvalidColor   Code = "INVALID_COLOR"   // unparseable color value

	// Missing mapping entries
	ErrCodeMissingGroupColor Code = "MISSING_GROUP_COLOR"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
	var m *MissingGroupColorError
	if errors.As(err, &m) {
		return code == ErrCodeMissingGroupColor
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not a structured error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var m *MissingGroupColorError
	if errors.As(err, &m) {
		return ErrCodeMissingGroupColor
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

// MissingGroupColorError reports group identifiers present in the group labels
// but absent from an explicit group→color mapping. The missing identifiers are
// carried for diagnostics and rendered sorted in the message.
type MissingGroupColorError struct {
	Missing []string // Sorted group identifiers without a mapped color
}

// Error implements the error interface.
func (e *MissingGroupColorError) Error() string {
	return fmt.Sprintf("group colors missing for: %s", strings.Join(e.Missing, ", "))
}

// Code returns the error code for this error type.
func (e *MissingGroupColorError) Code() Code {
	return ErrCodeMissingGroupColor
}
