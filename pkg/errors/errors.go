// Package errors provides structured error handling for the tempo timing
// library.
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
	// KindConfig indicates an invalid animator configuration.
	KindConfig
	// KindState indicates misuse of the animator lifecycle.
	KindState
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindState:
		return "state"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ConfigError reports an invalid animator configuration. Configuration is a
// construction-time contract: a ConfigError is returned before an animator
// is built, never during a run.
type ConfigError struct {
	// Field is the configuration field that failed validation.
	Field string
	// Value is the rejected value.
	Value any
	// Reason describes the constraint that was violated.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("timing: invalid config %s=%v: %s", e.Field, e.Value, e.Reason)
}

// StateError reports caller misuse of the animator lifecycle, such as
// starting an animator that is already running. It is raised via panic:
// this is a programming error in the caller, not a runtime condition to
// retry.
type StateError struct {
	// Op is the operation that was misused (e.g., "Animator.Start").
	Op string
	// State describes the animator state that made the call invalid.
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("timing: %s called while %s", e.Op, e.State)
}

// PanicError represents a panic recovered from a user callback.
type PanicError struct {
	// Op is the operation that panicked (e.g., "timing.TickerSource").
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

// Handler receives errors reported by the tempo library.
type Handler interface {
	// HandlePanic is called when a panic is recovered from a user callback.
	HandlePanic(err *PanicError)
}
