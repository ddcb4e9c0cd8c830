// Package examerr defines the failure kinds reported by the exam pipeline.
//
// Every component returns an *Error carrying one Kind, so callers can branch
// on what went wrong without inspecting message text.
package examerr

import (
	"errors"
	"fmt"
)

// Kind names a class of pipeline failure.
type Kind int

const (
	Unknown Kind = iota
	NotFound
	ExtractionFailure
	InvalidConfiguration
	ExternalServiceFailure
	PersistenceFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case ExtractionFailure:
		return "extraction_failure"
	case InvalidConfiguration:
		return "invalid_configuration"
	case ExternalServiceFailure:
		return "external_service_failure"
	case PersistenceFailure:
		return "persistence_failure"
	default:
		return "unknown"
	}
}

// Error is a pipeline failure of a known Kind.
type Error struct {
	Kind Kind
	// Op is the operation that failed, e.g. "extract" or "render".
	Op string
	// Path is the file involved, if any.
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an *Error of the given kind.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// WithPath returns an *Error of the given kind that names a file.
func WithPath(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case NotFound:
		return 2
	case ExtractionFailure:
		return 3
	case InvalidConfiguration:
		return 4
	case ExternalServiceFailure:
		return 5
	case PersistenceFailure:
		return 6
	default:
		return 1
	}
}
