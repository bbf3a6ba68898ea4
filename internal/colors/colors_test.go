package colors

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures mirrored messages per level.
type recordingLogger struct {
	debugs []string
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.debugs = append(l.debugs, msg) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.warns = append(l.warns, msg) }
func (l *recordingLogger) Error(msg string, args ...any) { l.errors = append(l.errors, msg) }

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestErrorWritesToStderr(t *testing.T) {
	out := captureStderr(t, func() {
		Error("something", "broke")
	})

	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "something broke")
	assert.Contains(t, out, Red)
}

func TestWarningWritesToStderr(t *testing.T) {
	out := captureStderr(t, func() {
		Warning("heads up")
	})

	assert.Contains(t, out, "Warning:")
	assert.Contains(t, out, "heads up")
}

func TestSuccessWritesToStdout(t *testing.T) {
	out := captureStdout(t, func() {
		Success("applied HDMI-1")
	})

	assert.Contains(t, out, checkmark)
	assert.Contains(t, out, "applied HDMI-1")
}

func TestInfoWritesToStdout(t *testing.T) {
	out := captureStdout(t, func() {
		Info("nothing to do")
	})

	assert.Contains(t, out, "nothing to do")
}

func TestDebugGatedOnDebugMode(t *testing.T) {
	orig := debugEnabled
	defer SetDebug(orig)

	SetDebug(false)
	out := captureStderr(t, func() {
		Debug("hidden")
	})
	assert.Empty(t, out)

	SetDebug(true)
	out = captureStderr(t, func() {
		Debug("visible")
	})
	assert.Contains(t, out, "Debug:")
	assert.Contains(t, out, "visible")
}

func TestConsoleOutputMirroredToLogger(t *testing.T) {
	logger := &recordingLogger{}
	SetLogger(logger)
	defer SetLogger(nil)

	captureStderr(t, func() {
		Error("exec failed")
		Warning("slow query")
	})
	captureStdout(t, func() {
		Success("done")
		Info("three displays")
	})

	assert.Equal(t, []string{"exec failed"}, logger.errors)
	assert.Equal(t, []string{"slow query"}, logger.warns)
	assert.True(t, strings.HasPrefix(logger.infos[0], "done"))
	assert.Contains(t, logger.infos, "three displays")
}
