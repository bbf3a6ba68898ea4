package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
	assert.NotEmpty(t, GetVersion())
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	orig := versionOutputWriter
	versionOutputWriter = &buf
	defer func() { versionOutputWriter = orig }()

	PrintVersion()

	assert.Equal(t, "displayctl v"+Version+"\n", buf.String())
}
