// Package rendererr defines the two error kinds that propagate from the
// layout and emission pipeline: InvalidModel and IoOrFormatting. Every other
// recoverable oddity degrades silently in the direction of reference
// parity and never surfaces as an error.
package rendererr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error kind.
type Kind string

const (
	// InvalidModel means the semantic input violates a documented
	// invariant the core cannot repair: a missing positioned node after
	// layout, cyclic subgraph membership, or an edge endpoint that never
	// resolves to a node. This indicates a caller bug, not a user error,
	// and is never handled internally.
	InvalidModel Kind = "INVALID_MODEL"

	// IoOrFormatting means a write to the output string could not be
	// formatted. It wraps the underlying formatting error.
	IoOrFormatting Kind = "IO_OR_FORMATTING"
)

// Error is a structured error carrying a Kind and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewInvalidModel builds an InvalidModel error with a formatted message.
func NewInvalidModel(format string, args ...any) *Error {
	return &Error{Kind: InvalidModel, Message: fmt.Sprintf(format, args...)}
}

// WrapIoOrFormatting wraps a formatting failure (typically from
// fmt.Fprintf/bytes.Buffer, which in practice never fails, but the layer
// above still treats it as a distinct propagation path per the error
// design).
func WrapIoOrFormatting(cause error, format string, args ...any) *Error {
	return &Error{Kind: IoOrFormatting, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind extracts the Kind from err, or "" if err is not an *Error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
