package cmd

import (
	"testing"

	"github.com/cristianoliveira/displayctl/internal/display"
	"github.com/cristianoliveira/displayctl/internal/xrandr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetSetFlags restores the set command's flag variables after a test.
func resetSetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		setResolution = ""
		setUnchecked = false
		setRotate = ""
		setPosition = ""
		setPrimary = false
		setOn = false
		setDryRun = false
	})
}

func setTestDisplay() *display.Display {
	return display.New(new(xrandr.MockClient), xrandr.Record{
		Name: "HDMI-1",
		Modes: []xrandr.Mode{
			{Width: 1920, Height: 1080, Refresh: 60.0, Current: true, Preferred: true},
			{Width: 1280, Height: 720, Refresh: 60.0},
		},
	})
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input   string
		width   int
		height  int
		wantErr bool
	}{
		{"1920x1080", 1920, 1080, false},
		{"1280X720", 1280, 720, false},
		{"1920", 0, 0, true},
		{"x1080", 0, 0, true},
		{"1920x", 0, 0, true},
		{"0x1080", 0, 0, true},
		{"1920x-1", 0, 0, true},
		{"widexhigh", 0, 0, true},
	}

	for _, tc := range tests {
		width, height, err := parseResolution(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "input=%q", tc.input)
			continue
		}
		require.NoError(t, err, "input=%q", tc.input)
		assert.Equal(t, tc.width, width)
		assert.Equal(t, tc.height, height)
	}
}

func TestApplySetFlagsResolution(t *testing.T) {
	resetSetFlags(t)
	setResolution = "1280x720"

	d := setTestDisplay()
	require.NoError(t, applySetFlags(d))
	assert.True(t, d.Pending().Resolution)
}

func TestApplySetFlagsUnsupportedResolution(t *testing.T) {
	resetSetFlags(t)
	setResolution = "800x600"

	d := setTestDisplay()
	err := applySetFlags(d)
	var unsupported *display.UnsupportedResolutionError
	assert.ErrorAs(t, err, &unsupported)
}

func TestApplySetFlagsUncheckedResolution(t *testing.T) {
	resetSetFlags(t)
	setResolution = "800x600"
	setUnchecked = true

	d := setTestDisplay()
	require.NoError(t, applySetFlags(d))
	assert.True(t, d.Pending().Resolution)
}

func TestApplySetFlagsRotationSymbol(t *testing.T) {
	resetSetFlags(t)
	setRotate = "left"

	d := setTestDisplay()
	require.NoError(t, applySetFlags(d))
	assert.Equal(t, display.RotationLeft, d.Rotation())
}

func TestApplySetFlagsRotationDegrees(t *testing.T) {
	resetSetFlags(t)
	setRotate = "90"

	d := setTestDisplay()
	require.NoError(t, applySetFlags(d))
	assert.Equal(t, display.RotationRight, d.Rotation())
}

func TestApplySetFlagsInvalidRotation(t *testing.T) {
	resetSetFlags(t)
	setRotate = "45"

	d := setTestDisplay()
	assert.ErrorIs(t, applySetFlags(d), display.ErrInvalidRotation)
}

func TestApplySetFlagsPosition(t *testing.T) {
	resetSetFlags(t)
	setPosition = "leftof:eDP-1"

	d := setTestDisplay()
	require.NoError(t, applySetFlags(d))
	assert.Equal(t, display.Position{Direction: "leftof", RelativeTo: "eDP-1"}, d.Position())
}

func TestApplySetFlagsMalformedPosition(t *testing.T) {
	resetSetFlags(t)

	for _, input := range []string{"leftof", "leftof:"} {
		setPosition = input
		d := setTestDisplay()
		assert.Error(t, applySetFlags(d), "input=%q", input)
	}
}

func TestApplySetFlagsEnableBeforeResolution(t *testing.T) {
	resetSetFlags(t)
	setOn = true
	setResolution = "1920x1080"

	d := display.New(new(xrandr.MockClient), xrandr.Record{
		Name: "DP-1",
		Modes: []xrandr.Mode{
			{Width: 1920, Height: 1080, Refresh: 60.0, Preferred: true},
		},
	})
	require.NoError(t, applySetFlags(d),
		"--on is queued first so a resolution is accepted on an off display")
	assert.True(t, d.Pending().Enabled)
	assert.True(t, d.Pending().Resolution)
}

func TestApplySetFlagsPrimary(t *testing.T) {
	resetSetFlags(t)
	setPrimary = true

	d := setTestDisplay()
	require.NoError(t, applySetFlags(d))
	assert.True(t, d.IsPrimary())
	assert.True(t, d.Pending().Primary)
}
