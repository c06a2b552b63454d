//go:build !js && !wasm

// Package tty provides utilities for TTY (terminal) detection.
// Detection uses golang.org/x/term.
package tty

import (
	"io"
	"os"

	"github.com/pearify/chalk/pkg/constants"
	"golang.org/x/term"
)

// IsStdoutTerminal returns true if stdout is connected to a terminal.
func IsStdoutTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStderrTerminal returns true if stderr is connected to a terminal.
func IsStderrTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsTerminalWriter reports whether w is a file descriptor attached to a
// terminal. Buffers and pipes report false.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorDisabled reports whether the environment asks for no color:
// a non-empty NO_COLOR (https://no-color.org) or TERM=dumb.
func ColorDisabled() bool {
	if os.Getenv(constants.EnvNoColor.String()) != "" {
		return true
	}
	return os.Getenv("TERM") == "dumb"
}
