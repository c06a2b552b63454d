//go:build js || wasm

package console

import (
	"strings"
	"syscall/js"
)

// BrowserSink forwards console calls to the JavaScript console object, so
// the browser applies the %c CSS itself.
type BrowserSink struct {
	console js.Value
}

// NewBrowserSink binds to globalThis.console.
func NewBrowserSink() *BrowserSink {
	return &BrowserSink{console: js.Global().Get("console")}
}

// Default returns the platform console: the browser console.
func Default() Sink {
	return NewBrowserSink()
}

// Emit calls console[level](format, ...args).
func (s *BrowserSink) Emit(level Level, format string, args ...any) {
	jsArgs := make([]any, 0, len(args)+1)
	jsArgs = append(jsArgs, format)
	for _, a := range args {
		jsArgs = append(jsArgs, toJS(a))
	}
	s.console.Call(string(level), jsArgs...)
}

// toJS passes through values syscall/js can convert and stringifies the rest.
func toJS(v any) any {
	switch x := v.(type) {
	case nil, js.Value, js.Func, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, []any, map[string]any:
		return x
	default:
		return Stringify(x)
	}
}

func FormatSuccessMessage(message string) string  { return "✓ " + message }
func FormatInfoMessage(message string) string     { return "ℹ " + message }
func FormatWarningMessage(message string) string  { return "⚠ " + message }
func FormatErrorMessage(message string) string    { return "✗ " + message }
func FormatVerboseMessage(message string) string  { return "🔍 " + message }
func FormatExpression(expr string) string         { return expr }

func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}
	var output strings.Builder
	if config.Title != "" {
		output.WriteString(config.Title)
		output.WriteString("\n")
	}
	output.WriteString(strings.Join(config.Headers, "\t"))
	output.WriteString("\n")
	for _, row := range config.Rows {
		output.WriteString(strings.Join(row, "\t"))
		output.WriteString("\n")
	}
	return output.String()
}
