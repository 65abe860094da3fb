package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// HandleError logs a hard failure to stderr.
func (h *LogHandler) HandleError(err *FleetError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[fleet error] %s [%s] at %s: %v\n", err.Op, err.Kind, err.Timestamp.Format("15:04:05.000"), err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[fleet error] %s: %v\n", err.Op, err.Err)
	}
}

// HandleWarning logs a non-fatal condition to stderr.
func (h *LogHandler) HandleWarning(err *FleetError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[fleet warning] %s [%s] at %s: %v\n", err.Op, err.Kind, err.Timestamp.Format("15:04:05.000"), err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[fleet warning] %s: %v\n", err.Op, err.Err)
	}
}
