package colors

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogEmitsJSON(t *testing.T) {
	orig := debugEnabled
	defer SetDebug(orig)
	SetDebug(true)

	out := captureStderr(t, func() {
		StructuredError("xrandr", "run", "failed", errors.New("exit status 1"),
			"HDMI-1", map[string]interface{}{"args_count": 3})
	})

	var entry StructuredLogEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &entry))
	assert.Equal(t, LevelError, entry.Level)
	assert.Equal(t, "xrandr", entry.Component)
	assert.Equal(t, "run", entry.Action)
	assert.Equal(t, "failed", entry.Status)
	assert.Equal(t, "exit status 1", entry.Error)
	assert.Equal(t, "HDMI-1", entry.ID)
	assert.EqualValues(t, 3, entry.Fields["args_count"])
	assert.NotEmpty(t, entry.Timestamp)
}

func TestStructuredLogRequiresDebugMode(t *testing.T) {
	orig := debugEnabled
	defer SetDebug(orig)
	SetDebug(false)

	out := captureStderr(t, func() {
		StructuredInfo("display", "apply", "started", nil, "HDMI-1", nil)
	})

	assert.Empty(t, out)
}

func TestStructuredLoggingToggle(t *testing.T) {
	orig := debugEnabled
	defer SetDebug(orig)
	SetDebug(true)

	DisableStructuredLogging()
	out := captureStderr(t, func() {
		StructuredInfo("tui", "open", "started", nil, "", nil)
	})
	assert.Empty(t, out)

	EnableStructuredLogging()
	out = captureStderr(t, func() {
		StructuredInfo("tui", "open", "started", nil, "", nil)
	})
	assert.Contains(t, out, `"component":"tui"`)
}
