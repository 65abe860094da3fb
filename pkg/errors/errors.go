// Package errors provides structured error handling for the Fleet harness.
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
	// KindUsage indicates a non-fatal misuse of the simulation API.
	KindUsage
	// KindDisabled indicates an interaction with a disabled control.
	KindDisabled
	// KindWindow indicates a key-window lookup failure.
	KindWindow
	// KindTimeout indicates an awaited condition that never became true.
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindDisabled:
		return "disabled"
	case KindWindow:
		return "window"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// FleetError represents a structured error in the Fleet harness.
type FleetError struct {
	// Op is the operation that failed (e.g., "harness.EnterControl").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FleetError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FleetError) Unwrap() error {
	return e.Err
}

// DisabledControlError reports an attempt to enter a disabled control.
// It is returned to the caller as a recoverable error, never reported
// through the warning channel.
type DisabledControlError struct {
	// Op is the operation that was refused.
	Op string
}

func (e *DisabledControlError) Error() string {
	return fmt.Sprintf("%s: control is disabled", e.Op)
}

// TimeoutError reports that a WaitUntil condition never became true
// within its budget.
type TimeoutError struct {
	// Condition names the unmet expectation.
	Condition string
	// Timeout is the budget that was exceeded.
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %v waiting for condition: %s", e.Timeout, e.Condition)
}

// ErrorHandler receives errors and warnings reported by the harness.
type ErrorHandler interface {
	// HandleError is called for hard failures.
	HandleError(err *FleetError)
	// HandleWarning is called for non-fatal conditions; the operation
	// that reported one has already become a no-op.
	HandleWarning(err *FleetError)
}
