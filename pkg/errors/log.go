package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables output of absorbed ignored-operation reports.
	Verbose bool
}

// HandleError logs a FoldError to stderr. Ignored-operation reports are
// suppressed unless Verbose is set; they are debug signal, not failures.
func (h *LogHandler) HandleError(err *FoldError) {
	if err == nil {
		return
	}
	if err.Kind == KindIgnoredOp && !h.Verbose {
		return
	}
	if err.Widget != "" {
		fmt.Fprintf(os.Stderr, "[fold %s] %s widget=%s: %v\n", err.Kind, err.Op, err.Widget, err.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "[fold %s] %s: %v\n", err.Kind, err.Op, err.Err)
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[fold panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[fold panic] %v\n", err.Value)
	}
}
