//go:build !integration && !js && !wasm && !windows

package tty

import (
	"bytes"
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminalWriterWithPTY(t *testing.T) {
	ptmx, tt, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	defer ptmx.Close()
	defer tt.Close()

	assert.True(t, IsTerminalWriter(tt), "pty slave should be a terminal")
}

func TestIsTerminalWriterWithBuffer(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminalWriter(&buf))
}

func TestIsTerminalWriterWithTempFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminalWriter(f))
}

func TestColorDisabled(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "1")
	assert.True(t, ColorDisabled())

	t.Setenv("NO_COLOR", "")
	assert.False(t, ColorDisabled(), "empty NO_COLOR is ignored")
}

func TestColorDisabledDumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.True(t, ColorDisabled())
}
