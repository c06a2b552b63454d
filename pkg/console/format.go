package console

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pearify/chalk/pkg/logger"
)

var formatLog = logger.New("console:format")

// Segment is a run of text and the CSS that applies to it.
type Segment struct {
	Text string
	CSS  string
}

// Interpret applies console format semantics to format and args:
//
//	%c      start a new segment styled by the next argument
//	%s      the next argument as a string
//	%d, %i  the next argument as an integer
//	%f      the next argument as a float
//	%o, %O  the next argument as a value
//	%%      a literal percent sign
//
// A directive with no argument left is kept verbatim. Segments with empty
// text are dropped. The arguments not consumed by directives are returned.
func Interpret(format string, args []any) ([]Segment, []any) {
	var (
		segments []Segment
		cur      Segment
		text     strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			cur.Text = text.String()
			segments = append(segments, cur)
		}
		text.Reset()
	}

	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' || i+1 >= len(format) {
			text.WriteByte(ch)
			continue
		}
		verb := format[i+1]
		if verb == '%' {
			text.WriteByte('%')
			i++
			continue
		}
		if !strings.ContainsRune("csdifoO", rune(verb)) {
			text.WriteByte(ch)
			continue
		}
		if len(args) == 0 {
			text.WriteByte(ch)
			text.WriteByte(verb)
			i++
			continue
		}
		arg := args[0]
		args = args[1:]
		i++

		switch verb {
		case 'c':
			flush()
			cur = Segment{CSS: Stringify(arg)}
		case 's':
			text.WriteString(Stringify(arg))
		case 'd', 'i':
			text.WriteString(formatInt(arg))
		case 'f':
			text.WriteString(formatFloat(arg))
		case 'o', 'O':
			text.WriteString(formatValue(arg))
		}
	}
	flush()

	formatLog.Printf("Interpreted format: segments=%d, rest=%d", len(segments), len(args))
	return segments, args
}

// Stringify renders an argument the way a console prints a bare value.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// JoinArgs renders leftover arguments separated by spaces.
func JoinArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Stringify(a)
	}
	return strings.Join(parts, " ")
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		return parseLeadingNumber(x)
	}
	return 0, false
}

// parseLeadingNumber reads the longest numeric prefix of s, ignoring
// leading space, the way parseFloat does.
func parseLeadingNumber(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	for end < len(s) && strings.IndexByte("+-0123456789.eE", s[end]) >= 0 {
		end++
	}
	for end > 0 {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f, true
		}
		end--
	}
	return 0, false
}

func formatInt(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return "NaN"
	}
	// Outside the int64 range the truncated value is printed as a float.
	if math.IsInf(f, 0) || math.Abs(f) >= 1<<63 {
		return formatFloat(math.Trunc(f))
	}
	return strconv.FormatInt(int64(math.Trunc(f)), 10)
}

func formatFloat(v any) string {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return "NaN"
	}
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%+v", v)
}
