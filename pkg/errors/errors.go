// Package errors provides structured error handling for the Fold runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfiguration indicates an invalid widget construction, such as a
	// missing root element. Configuration errors are surfaced to the caller.
	KindConfiguration
	// KindParse indicates a markup or tokens-file parsing failure.
	KindParse
	// KindIgnoredOp indicates an operation that was silently absorbed:
	// an out-of-range index, a call on an item already in the requested
	// terminal state, or an open refused while disabled. Ignored operations
	// are never surfaced to callers; they reach the handler only so debug
	// tooling can observe them.
	KindIgnoredOp
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindParse:
		return "parse"
	case KindIgnoredOp:
		return "ignored"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FoldError represents a structured error in the Fold runtime.
type FoldError struct {
	// Op is the operation that failed (e.g., "collapse.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the event namespace of the widget involved, if any.
	Widget string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FoldError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FoldError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dom.DispatchEvent").
	Op string
	// Value is the value passed to panic().
	Value any
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to interpret markup or tokens data.
type ParseError struct {
	// Source names the input (file path or "inline markup").
	Source string
	// Detail describes what could not be parsed.
	Detail string
	// Err is the underlying error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s: %s: %v", e.Source, e.Detail, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Source, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Fold runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs, including absorbed
	// ignored-operation reports.
	HandleError(err *FoldError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
