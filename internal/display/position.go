// Package display models xrandr outputs as objects.
package display

import (
	"fmt"
	"strings"
)

// Relative position directions accepted by SetPosition.
const (
	PositionLeftOf  = "leftof"
	PositionRightOf = "rightof"
	PositionAbove   = "above"
	PositionBelow   = "below"
	PositionSameAs  = "sameas"
)

var positionFlags = map[string]string{
	PositionLeftOf:  "--left-of",
	PositionRightOf: "--right-of",
	PositionAbove:   "--above",
	PositionBelow:   "--below",
	PositionSameAs:  "--same-as",
}

// PositionFlag converts a relative direction to the xrandr flag spelling,
// e.g. "LeftOf" -> "--left-of". The lookup is case-insensitive.
func PositionFlag(direction string) (string, error) {
	flag, ok := positionFlags[strings.ToLower(direction)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, direction)
	}
	return flag, nil
}

// Position is a pending placement relative to another output.
// The zero value means no position has been set.
type Position struct {
	Direction  string
	RelativeTo string
}
