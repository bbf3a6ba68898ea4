package display

import (
	"errors"
	"testing"

	"github.com/cristianoliveira/displayctl/internal/xrandr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnected(t *testing.T) {
	client := new(xrandr.MockClient)
	client.On("QueryAll").Return([]xrandr.Record{testRecord(), offRecord()}, nil)

	displays, err := Connected(client)
	require.NoError(t, err)
	require.Len(t, displays, 2)
	assert.Equal(t, "HDMI-1", displays[0].Name())
	assert.Equal(t, "DP-1", displays[1].Name())
}

func TestConnectedQueryFailure(t *testing.T) {
	client := new(xrandr.MockClient)
	queryErr := errors.New("exec: \"xrandr\": executable file not found in $PATH")
	client.On("QueryAll").Return([]xrandr.Record(nil), queryErr)

	displays, err := Connected(client)
	assert.ErrorIs(t, err, queryErr)
	assert.Nil(t, displays)
}

func TestEnabledFiltersOffOutputs(t *testing.T) {
	client := new(xrandr.MockClient)
	client.On("QueryAll").Return([]xrandr.Record{testRecord(), offRecord()}, nil)

	displays, err := Enabled(client)
	require.NoError(t, err)
	require.Len(t, displays, 1)
	assert.Equal(t, "HDMI-1", displays[0].Name())
}

func TestGet(t *testing.T) {
	client := new(xrandr.MockClient)
	client.On("QueryOne", "HDMI-1").Return(testRecord(), nil)

	d, err := Get(client, "HDMI-1")
	require.NoError(t, err)
	assert.Equal(t, "HDMI-1", d.Name())
}

func TestGetUnknownOutput(t *testing.T) {
	client := new(xrandr.MockClient)
	client.On("QueryOne", "VGA-9").Return(xrandr.Record{}, xrandr.ErrOutputNotFound)

	_, err := Get(client, "VGA-9")
	assert.ErrorIs(t, err, xrandr.ErrOutputNotFound)
}
