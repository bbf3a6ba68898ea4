// Package xrandr provides a thin abstraction over the xrandr command line
// tool. It executes xrandr, captures its output, and parses the status text
// into records that the display package builds its model from.
package xrandr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/cristianoliveira/displayctl/internal/colors"
)

// Client is an interface that abstracts all xrandr operations.
type Client interface {
	// QueryAll returns one record per connected output, in the order
	// xrandr reports them.
	QueryAll() ([]Record, error)

	// QueryOne returns the record for a single output by name.
	// Returns ErrOutputNotFound if the output is not connected.
	QueryOne(name string) (Record, error)

	// Run executes xrandr with the given arguments.
	Run(args ...string) (string, string, error)
}

// DefaultClient implements Client using exec.Command to run xrandr.
type DefaultClient struct {
	binary  string
	timeout time.Duration
}

// NewDefaultClient creates a new DefaultClient with the given options.
func NewDefaultClient(opts ...ClientOption) *DefaultClient {
	client := &DefaultClient{
		binary:  DefaultBinary,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// runCommand executes xrandr with the given arguments.
// It returns stdout, stderr, and any error that occurred.
func (c *DefaultClient) runCommand(args ...string) (string, string, error) {
	start := time.Now()
	colors.StructuredDebug("xrandr", "run", "started", nil, c.binary, map[string]interface{}{"args_count": len(args)})
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start).Seconds()
	if err != nil {
		colors.StructuredError("xrandr", "run", "failed", err, c.binary, map[string]interface{}{"args_count": len(args), "duration_seconds": duration})
	} else {
		colors.StructuredDebug("xrandr", "run", "completed", nil, c.binary, map[string]interface{}{"args_count": len(args), "duration_seconds": duration})
	}
	return stdout.String(), stderr.String(), err
}

// Run executes xrandr with the given arguments.
// On non-zero exit the returned error is an *ExecutionError carrying the
// combined output.
func (c *DefaultClient) Run(args ...string) (string, string, error) {
	stdout, stderr, err := c.runCommand(args...)
	if err != nil {
		return stdout, stderr, &ExecutionError{
			Args:   args,
			Output: stdout + stderr,
			Err:    err,
		}
	}
	return stdout, stderr, nil
}

// QueryAll runs a bare xrandr invocation and parses one record per
// connected output.
func (c *DefaultClient) QueryAll() ([]Record, error) {
	stdout, stderr, err := c.Run()
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return ParseStatus(stdout), nil
}

// QueryOne returns the record for a single output by name.
func (c *DefaultClient) QueryOne(name string) (Record, error) {
	records, err := c.QueryAll()
	if err != nil {
		return Record{}, err
	}
	for _, rec := range records {
		if rec.Name == name {
			return rec, nil
		}
	}
	return Record{}, fmt.Errorf("%w: %s", ErrOutputNotFound, name)
}
