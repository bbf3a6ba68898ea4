package xrandr

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeXrandr writes an executable script that prints the fixture and
// returns its path.
func fakeXrandr(t *testing.T, fixture string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-xrandr")
	script := "#!/bin/sh\ncat <<'EOF'\n" + fixture + "EOF\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestNewDefaultClientDefaults(t *testing.T) {
	client := NewDefaultClient()

	assert.Equal(t, DefaultBinary, client.binary)
	assert.Equal(t, DefaultTimeout, client.timeout)
}

func TestNewDefaultClientOptions(t *testing.T) {
	client := NewDefaultClient(
		WithBinary("/usr/local/bin/xrandr"),
		WithTimeout(2*time.Second),
	)

	assert.Equal(t, "/usr/local/bin/xrandr", client.binary)
	assert.Equal(t, 2*time.Second, client.timeout)
}

func TestRunMissingBinary(t *testing.T) {
	client := NewDefaultClient(WithBinary(filepath.Join(t.TempDir(), "missing")))

	_, _, err := client.Run("--output", "HDMI-1", "--auto")

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, []string{"--output", "HDMI-1", "--auto"}, execErr.Args)
}

func TestQueryAll(t *testing.T) {
	client := NewDefaultClient(WithBinary(fakeXrandr(t, statusFixture)))

	records, err := client.QueryAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "eDP-1", records[0].Name)
	assert.True(t, records[0].Primary)
}

func TestQueryAllFailure(t *testing.T) {
	client := NewDefaultClient(WithBinary(filepath.Join(t.TempDir(), "missing")))

	_, err := client.QueryAll()
	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestQueryOne(t *testing.T) {
	client := NewDefaultClient(WithBinary(fakeXrandr(t, statusFixture)))

	record, err := client.QueryOne("HDMI-1")
	require.NoError(t, err)
	assert.Equal(t, "HDMI-1", record.Name)
	assert.Equal(t, "inverted", record.Rotation)
}

func TestQueryOneNotFound(t *testing.T) {
	client := NewDefaultClient(WithBinary(fakeXrandr(t, statusFixture)))

	_, err := client.QueryOne("VGA-9")
	assert.ErrorIs(t, err, ErrOutputNotFound)
}
