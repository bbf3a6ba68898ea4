package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionFlag(t *testing.T) {
	tests := []struct {
		direction string
		flag      string
	}{
		{"leftof", "--left-of"},
		{"rightof", "--right-of"},
		{"above", "--above"},
		{"below", "--below"},
		{"sameas", "--same-as"},
		{"LeftOf", "--left-of"},
		{"SAMEAS", "--same-as"},
	}

	for _, tc := range tests {
		flag, err := PositionFlag(tc.direction)
		require.NoError(t, err, "direction=%q", tc.direction)
		assert.Equal(t, tc.flag, flag)
	}
}

func TestPositionFlagInvalid(t *testing.T) {
	for _, direction := range []string{"behind", "left-of", ""} {
		_, err := PositionFlag(direction)
		assert.ErrorIs(t, err, ErrInvalidPosition, "direction=%q", direction)
	}
}
