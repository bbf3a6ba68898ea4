// Package xrandr provides a thin abstraction over the xrandr command line tool.
package xrandr

import "time"

const (
	// DefaultBinary is the xrandr executable name resolved via PATH.
	DefaultBinary = "xrandr"

	// DefaultTimeout is the default timeout for xrandr commands.
	DefaultTimeout = 5 * time.Second
)

// ClientOption is a functional option for configuring a Client.
type ClientOption func(*DefaultClient)

// WithBinary sets the xrandr executable path for the client.
func WithBinary(binary string) ClientOption {
	return func(c *DefaultClient) {
		c.binary = binary
	}
}

// WithTimeout sets the timeout for xrandr command execution.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *DefaultClient) {
		c.timeout = timeout
	}
}
