package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Sidebar generated at %s\n", "docs/src/sidebars/apiSidebar.json")
	assert.Equal(t, "Sidebar generated at docs/src/sidebars/apiSidebar.json\n", buf.String())
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Simple message")
	assert.Equal(t, "Simple message", buf.String())
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write(p []byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(errorWriter{}, "lost %d", 1)
	})
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, errors.New("file not found: docs/static/openapi.json"))
	assert.Equal(t, "Error: file not found: docs/static/openapi.json\n", buf.String())
}
