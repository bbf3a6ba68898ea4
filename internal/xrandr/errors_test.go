package xrandr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionErrorMessage(t *testing.T) {
	err := &ExecutionError{
		Args:   []string{"--output", "HDMI-1", "--off"},
		Output: "xrandr: cannot find output",
		Err:    errors.New("exit status 1"),
	}

	assert.Equal(t, "xrandr command --output HDMI-1 --off failed: exit status 1", err.Error())
}

func TestExecutionErrorUnwrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &ExecutionError{Args: []string{"--off"}, Err: cause}

	assert.ErrorIs(t, err, cause)

	var execErr *ExecutionError
	assert.ErrorAs(t, error(err), &execErr)
}
