//go:build js || wasm

// Package styles provides the constant palette tables and no-op terminal
// styles for Wasm builds. All styles return text unchanged.
package styles

import "strings"

// WasmStyle is a no-op style that returns text unchanged.
type WasmStyle struct{}

// Render joins text without styling.
func (s WasmStyle) Render(text ...string) string {
	return strings.Join(text, "")
}

var (
	Error       = WasmStyle{}
	Warning     = WasmStyle{}
	Success     = WasmStyle{}
	Info        = WasmStyle{}
	Expression  = WasmStyle{}
	Verbose     = WasmStyle{}
	TableHeader = WasmStyle{}
	TableCell   = WasmStyle{}
	TableTitle  = WasmStyle{}
	TableBorder = WasmStyle{}
)

// SwatchStyle returns a no-op style.
func SwatchStyle(Swatch) WasmStyle {
	return WasmStyle{}
}
