// Package display models xrandr outputs as objects.
package display

import (
	"fmt"
	"strings"
)

// Rotation symbols as xrandr spells them.
const (
	RotationNormal   = "normal"
	RotationRight    = "right"
	RotationInverted = "inverted"
	RotationLeft     = "left"
)

// Fixed degree-to-symbol table. The inverse is derived once at init.
var rotationBySymbol = map[string]int{
	RotationNormal:   0,
	RotationRight:    90,
	RotationInverted: 180,
	RotationLeft:     270,
}

var rotationByDegrees = func() map[int]string {
	m := make(map[int]string, len(rotationBySymbol))
	for symbol, degrees := range rotationBySymbol {
		m[degrees] = symbol
	}
	return m
}()

// RotationFromDegrees converts a degree value to its xrandr rotation symbol.
// Only 0, 90, 180 and 270 are valid.
func RotationFromDegrees(degrees int) (string, error) {
	symbol, ok := rotationByDegrees[degrees]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrInvalidRotation, degrees)
	}
	return symbol, nil
}

// DegreesFromRotation converts a rotation symbol back to degrees.
// The lookup is case-insensitive and ignores surrounding whitespace.
func DegreesFromRotation(symbol string) (int, error) {
	degrees, ok := rotationBySymbol[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRotation, symbol)
	}
	return degrees, nil
}
