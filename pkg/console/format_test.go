//go:build !integration

package console

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []any
		segments []Segment
		rest     []any
	}{
		{
			name:     "plain text",
			format:   "hello",
			segments: []Segment{{Text: "hello"}},
		},
		{
			name:     "single css segment",
			format:   "%chi",
			args:     []any{"color:red"},
			segments: []Segment{{Text: "hi", CSS: "color:red"}},
		},
		{
			name:   "text before first directive is unstyled",
			format: "a %cb",
			args:   []any{"font-weight:bold"},
			segments: []Segment{
				{Text: "a "},
				{Text: "b", CSS: "font-weight:bold"},
			},
		},
		{
			name:   "badge layout",
			format: "%c Pearify %c %c net ",
			args:   []any{"background:#94d05f", "", "background:white", "connected", 3},
			segments: []Segment{
				{Text: " Pearify ", CSS: "background:#94d05f"},
				{Text: " "},
				{Text: " net ", CSS: "background:white"},
			},
			rest: []any{"connected", 3},
		},
		{
			name:     "substitutions",
			format:   "%s has %d items at %f%%",
			args:     []any{"cart", 3.9, "2.5kg"},
			segments: []Segment{{Text: "cart has 3 items at 2.5%"}},
		},
		{
			name:     "integer from non number",
			format:   "%i",
			args:     []any{"abc"},
			segments: []Segment{{Text: "NaN"}},
		},
		{
			name:     "object directive quotes strings",
			format:   "%o and %O",
			args:     []any{"x", 7},
			segments: []Segment{{Text: `"x" and 7`}},
		},
		{
			name:     "missing argument keeps directive",
			format:   "%s and %c",
			args:     []any{"one"},
			segments: []Segment{{Text: "one and %c"}},
		},
		{
			name:     "unknown directive and trailing percent",
			format:   "100%x %",
			segments: []Segment{{Text: "100%x %"}},
		},
		{
			name:     "empty segments dropped",
			format:   "%c%cx",
			args:     []any{"color:red", "color:blue"},
			segments: []Segment{{Text: "x", CSS: "color:blue"}},
		},
		{
			name:     "utf8 preserved",
			format:   "%cé✓",
			args:     []any{"color:red"},
			segments: []Segment{{Text: "é✓", CSS: "color:red"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, rest := Interpret(tt.format, tt.args)
			assert.Equal(t, tt.segments, segments)
			assert.Equal(t, len(tt.rest), len(rest))
			if len(tt.rest) > 0 {
				assert.Equal(t, tt.rest, rest)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "null", Stringify(nil))
	assert.Equal(t, "boom", Stringify(errors.New("boom")))
	assert.Equal(t, "42", Stringify(42))
	assert.Equal(t, "debug", Stringify(LevelDebug))
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "a 1 true", JoinArgs([]any{"a", 1, true}))
	assert.Empty(t, JoinArgs(nil))
}

func TestFormatFloatSpecialValues(t *testing.T) {
	assert.Equal(t, "Infinity", formatFloat(math.Inf(1)))
	assert.Equal(t, "-Infinity", formatFloat(math.Inf(-1)))
	assert.Equal(t, "NaN", formatFloat(struct{}{}))
	assert.Equal(t, "-3", formatInt(-3.7))
}

func TestFormatIntOutsideInt64Range(t *testing.T) {
	segments, rest := Interpret("%d|%d|%i", []any{1e30, uint64(1<<63 + 5), -1e19})
	require.Len(t, segments, 1)
	assert.Empty(t, rest)
	assert.Equal(t, "1000000000000000000000000000000|9223372036854775813|-10000000000000000000", segments[0].Text)

	assert.Equal(t, "9223372036854775807", formatInt(int64(math.MaxInt64)))
	assert.Equal(t, "-Infinity", formatInt(math.Inf(-1)))
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" WARN ")
	assert.NoError(t, err)
	assert.Equal(t, LevelWarn, l)

	_, err = ParseLevel("trace")
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	args := []any{"color:red"}
	r.Emit(LevelInfo, "%chi", args...)
	args[0] = "mutated"

	call, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, Call{Level: LevelInfo, Format: "%chi", Args: []any{"color:red"}}, call)
}

func TestSinkFunc(t *testing.T) {
	var got Level
	var sink Sink = SinkFunc(func(level Level, format string, args ...any) { got = level })
	sink.Emit(LevelError, "x")
	assert.Equal(t, LevelError, got)
}

func TestRenderTableAsJSON(t *testing.T) {
	out, err := RenderTableAsJSON(TableConfig{
		Headers: []string{"Name", "Declaration"},
		Rows:    [][]string{{"bold", "font-weight:bold"}},
	})
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"name":"bold","declaration":"font-weight:bold"}]`, out)

	out, err = RenderTableAsJSON(TableConfig{})
	assert.NoError(t, err)
	assert.Equal(t, "[]", out)
}
