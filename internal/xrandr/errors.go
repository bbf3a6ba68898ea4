// Package xrandr provides a thin abstraction over the xrandr command line tool.
package xrandr

import (
	"errors"
	"fmt"
	"strings"
)

// Custom error types for xrandr-specific failures.
var (
	// ErrOutputNotFound is returned when an output name is absent from
	// the current xrandr status.
	ErrOutputNotFound = errors.New("output not found")

	// ErrQueryFailed is returned when the xrandr status query fails.
	ErrQueryFailed = errors.New("xrandr query failed")
)

// ExecutionError is returned when an xrandr invocation exits non-zero.
// It carries the full argument list and the combined output for diagnosis.
type ExecutionError struct {
	Args   []string
	Output string
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("xrandr command %v failed: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
