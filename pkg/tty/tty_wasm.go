//go:build js || wasm

package tty

import "io"

// IsStdoutTerminal returns false in Wasm environments (no TTY support).
func IsStdoutTerminal() bool {
	return false
}

// IsStderrTerminal returns false in Wasm environments (no TTY support).
func IsStderrTerminal() bool {
	return false
}

// IsTerminalWriter returns false in Wasm environments.
func IsTerminalWriter(io.Writer) bool {
	return false
}

// ColorDisabled returns false; the browser console handles CSS itself.
func ColorDisabled() bool {
	return false
}
