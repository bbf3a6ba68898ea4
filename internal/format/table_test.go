package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cristianoliveira/displayctl/internal/display"
	"github.com/cristianoliveira/displayctl/internal/xrandr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDisplays() []*display.Display {
	client := new(xrandr.MockClient)
	return []*display.Display{
		display.New(client, xrandr.Record{
			Name:    "eDP-1",
			Primary: true,
			Modes: []xrandr.Mode{
				{Width: 1920, Height: 1080, Refresh: 60.02, Current: true, Preferred: true},
				{Width: 1680, Height: 1050, Refresh: 59.95},
			},
		}),
		display.New(client, xrandr.Record{
			Name: "DP-1",
			Modes: []xrandr.Mode{
				{Width: 2560, Height: 1440, Refresh: 59.95, Preferred: true},
			},
		}),
	}
}

func TestFormatDisplays(t *testing.T) {
	var buf bytes.Buffer
	err := NewTableFormatter().FormatDisplays(testDisplays(), &buf)
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, and one row per display")

	assert.Contains(t, lines[0], "Output")
	assert.Contains(t, lines[0], "Resolution")
	assert.Contains(t, lines[1], "----")

	assert.Contains(t, lines[2], "eDP-1")
	assert.Contains(t, lines[2], "on")
	assert.Contains(t, lines[2], "*")
	assert.Contains(t, lines[2], "1920x1080")

	assert.Contains(t, lines[3], "DP-1")
	assert.Contains(t, lines[3], "off")
	assert.Contains(t, lines[3], "-")
	assert.NotContains(t, lines[3], "2560x1440", "an off display has no current resolution")
}

func TestFormatDisplaysEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := NewTableFormatter().FormatDisplays(nil, &buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestFormatDisplaysWithoutHeaders(t *testing.T) {
	formatter := NewTableFormatter()
	formatter.config.ShowHeaders = false

	var buf bytes.Buffer
	require.NoError(t, formatter.FormatDisplays(testDisplays(), &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "Output")
}

func TestWithColumns(t *testing.T) {
	formatter := NewTableFormatter().WithColumns(TableColumn{
		Name:  "Pending",
		Width: 7,
		Extractor: func(d *display.Display) string {
			if d.Pending().Any() {
				return "yes"
			}
			return "no"
		},
	})

	var buf bytes.Buffer
	require.NoError(t, formatter.FormatDisplays(testDisplays(), &buf))
	assert.Contains(t, buf.String(), "Pending")
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "abc  ", formatString("abc", 5, "left"))
	assert.Equal(t, "  abc", formatString("abc", 5, "right"))
	assert.Equal(t, " abc ", formatString("abc", 5, "center"))
	assert.Equal(t, "abcde", formatString("abcdefgh", 5, "left"), "overlong values are truncated")
}
