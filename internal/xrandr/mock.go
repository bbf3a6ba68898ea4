// Package xrandr provides a thin abstraction over the xrandr command line tool.
package xrandr

import (
	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client for testing.
// It uses testify/mock to provide flexible behavior configuration and
// method call tracking for assertions.
//
// Example usage:
//
//	mockClient := new(MockClient)
//	mockClient.On("QueryOne", "HDMI-1").Return(Record{
//	    Name:  "HDMI-1",
//	    Modes: []Mode{{Width: 1920, Height: 1080, Refresh: 60.0, Current: true}},
//	}, nil)
//
//	rec, err := mockClient.QueryOne("HDMI-1")
//	assert.NoError(t, err)
//	assert.Equal(t, "HDMI-1", rec.Name)
//
//	// Assert that the method was called
//	mockClient.AssertCalled(t, "QueryOne", "HDMI-1")
type MockClient struct {
	mock.Mock
}

// QueryAll returns mocked records for all connected outputs.
// Configure the return value using:
//
//	mock.On("QueryAll").Return([]Record{...}, nil)
func (m *MockClient) QueryAll() ([]Record, error) {
	args := m.Called()
	return args.Get(0).([]Record), args.Error(1)
}

// QueryOne returns a mocked record for a single output.
// Configure the return value using:
//
//	mock.On("QueryOne", "HDMI-1").Return(Record{...}, nil)
func (m *MockClient) QueryOne(name string) (Record, error) {
	args := m.Called(name)
	return args.Get(0).(Record), args.Error(1)
}

// Run returns mocked stdout, stderr, and error for an xrandr command.
// Configure the return value using:
//
//	mock.On("Run", []string{"--output", "HDMI-1", "--auto"}).Return("", "", nil)
func (m *MockClient) Run(args ...string) (string, string, error) {
	callArgs := m.Called(args)
	return callArgs.String(0), callArgs.String(1), callArgs.Error(2)
}
