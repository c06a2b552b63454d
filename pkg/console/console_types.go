package console

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level names the console method a message is sent through.
type Level string

const (
	LevelLog   Level = "log"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelDebug Level = "debug"
)

// Levels lists every level in severity-independent display order.
var Levels = []Level{LevelLog, LevelInfo, LevelWarn, LevelError, LevelDebug}

// ParseLevel maps a level name to a Level.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == strings.ToLower(strings.TrimSpace(s)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown console level %q (want log, info, warn, error or debug)", s)
}

// Sink receives console calls: a printf-style format string where each %c
// consumes one CSS string argument, followed by the remaining arguments.
type Sink interface {
	Emit(level Level, format string, args ...any)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(level Level, format string, args ...any)

// Emit calls f.
func (f SinkFunc) Emit(level Level, format string, args ...any) {
	f(level, format, args...)
}

// Call is one recorded console call.
type Call struct {
	Level  Level
	Format string
	Args   []any
}

// Recorder is a Sink that keeps every call. It is meant for tests and for
// callers that want to forward the calls later.
type Recorder struct {
	Calls []Call
}

// Emit records the call.
func (r *Recorder) Emit(level Level, format string, args ...any) {
	r.Calls = append(r.Calls, Call{Level: level, Format: format, Args: append([]any(nil), args...)})
}

// Last returns the most recent call, or false if there is none.
func (r *Recorder) Last() (Call, bool) {
	if len(r.Calls) == 0 {
		return Call{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}

// TableConfig represents configuration for table rendering
type TableConfig struct {
	Headers []string
	Rows    [][]string
	Title   string
}

// SelectOption represents a selectable option with a label and value
type SelectOption struct {
	Label string
	Value string
}

// RenderTableAsJSON renders a table configuration as JSON
func RenderTableAsJSON(config TableConfig) (string, error) {
	if len(config.Headers) == 0 {
		return "[]", nil
	}

	result := make([]map[string]string, 0, len(config.Rows))
	for _, row := range config.Rows {
		obj := make(map[string]string)
		for i, cell := range row {
			if i < len(config.Headers) {
				key := strings.ToLower(strings.ReplaceAll(config.Headers[i], " ", "_"))
				obj[key] = cell
			}
		}
		result = append(result, obj)
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal table to JSON: %w", err)
	}

	return string(jsonBytes), nil
}
