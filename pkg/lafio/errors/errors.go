// Package errors provides structured error types for the LAF pipeline.
//
// Error codes follow a hierarchical naming convention:
//   - STRUCTURAL_*: malformed containment/connection input
//   - EMPTY_*: nothing to lay out
//   - CONVERGENCE_*, DEGENERATE_*: non-fatal warnings returned alongside a
//     usable Layout
//
// Usage:
//
//	err := errors.New(errors.ErrCodeStructural, "element %q has two parents", id)
//	if errors.Is(err, errors.ErrCodeStructural) {
//	    // handle
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeStructural marks containment or connection-endpoint corruption:
	// a multi-parent element, a containment cycle, or an unknown id.
	ErrCodeStructural Code = "STRUCTURAL_ERROR"
	// ErrCodeEmptyGraph marks a Layout with no primary elements.
	ErrCodeEmptyGraph Code = "EMPTY_GRAPH"

	// ErrCodeConvergence is non-fatal: the bisection optimiser hit its pass
	// cap without converging. The layout is still usable.
	ErrCodeConvergence Code = "CONVERGENCE_WARNING"
	// ErrCodeDegenerateLayout is non-fatal: some elements still overlap
	// after redistribution (e.g. a label wider than its row).
	ErrCodeDegenerateLayout Code = "DEGENERATE_LAYOUT_WARNING"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error with the given code, wrapping cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err has the given error code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsFatal reports whether code represents a pipeline-aborting error rather
// than a warning returned alongside a usable Layout.
func IsFatal(code Code) bool {
	return code == ErrCodeStructural || code == ErrCodeEmptyGraph
}

// GetCode extracts the error code from err, or "" if err is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
