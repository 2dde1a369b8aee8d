// Package errors provides structured error handling for the slidertabs
// library.
//
// Two kinds of condition flow through here. Recoverable conditions
// (unreadable styling files, malformed attributes) are reported to the
// global handler and execution continues on defaults. Logic faults —
// an animated transition requested into a non-moving state, or an
// animation completing while the control is idle — indicate a defect in
// the library or its host and panic with a [*StateError]; they are not
// meant to be recovered from.
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
	// KindConfig indicates a styling/attribute loading error.
	KindConfig
	// KindState indicates an internal state machine inconsistency.
	KindState
	// KindRender indicates a painting error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindState:
		return "state"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WidgetError represents a structured, recoverable error.
type WidgetError struct {
	// Op is the operation that failed (e.g., "theme.LoadOptional").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// StateError represents an internal-consistency fault in a control's
// state machine. It is used as a panic value: by construction these
// conditions cannot occur, so observing one means a logic defect.
type StateError struct {
	// Op is the operation that detected the fault.
	Op string
	// State is a description of the control state at fault time.
	State string
	// Event is the event being processed.
	Event string
	// Reason explains the violated invariant.
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s (state=%s event=%s)", e.Op, e.Reason, e.State, e.Event)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
