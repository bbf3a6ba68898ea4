// Package display models xrandr outputs as objects.
package display

import (
	"errors"
	"fmt"
)

// Custom error types for display-specific failures. Collaborator failures
// (query, execution, unknown output) pass through from the xrandr package
// unchanged.
var (
	// ErrInvalidRotation is returned for a degree value or symbol outside
	// the fixed rotation table.
	ErrInvalidRotation = errors.New("invalid rotation")

	// ErrInvalidPosition is returned for an unrecognized relative
	// position direction.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrDisplayOff is returned when a resolution change is requested on
	// a disabled display without a pending enable.
	ErrDisplayOff = errors.New("display is off")
)

// UnsupportedResolutionError is returned when a requested resolution is not
// among the modes reported for the output.
type UnsupportedResolutionError struct {
	Requested Resolution
	Available []Resolution
}

func (e *UnsupportedResolutionError) Error() string {
	return fmt.Sprintf("resolution %s is not supported (%d modes available)",
		e.Requested, len(e.Available))
}
