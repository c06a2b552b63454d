//go:build !js && !wasm

package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/pearify/chalk/pkg/logger"
	"github.com/pearify/chalk/pkg/styles"
	"github.com/pearify/chalk/pkg/tty"
)

var consoleLog = logger.New("console:console")

// isTTY checks if stderr is a terminal that accepts color
func isTTY() bool {
	return tty.IsStderrTerminal() && !tty.ColorDisabled()
}

// applyStyle conditionally applies styling based on TTY status
func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// TerminalSink interprets console calls and writes one line per call,
// turning each %c segment's CSS into ANSI styling.
type TerminalSink struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	plain    bool
	debug    bool
}

// TerminalOption configures a TerminalSink.
type TerminalOption func(*TerminalSink)

// WithPlain disables styling regardless of the writer.
func WithPlain(plain bool) TerminalOption {
	return func(s *TerminalSink) { s.plain = plain }
}

// WithColorProfile forces a color profile, enabling styling even when the
// writer is not a terminal.
func WithColorProfile(p termenv.Profile) TerminalOption {
	return func(s *TerminalSink) {
		s.renderer.SetColorProfile(p)
		s.plain = p == termenv.Ascii
	}
}

// WithDebug makes the sink print LevelDebug calls, which are hidden by
// default the way browsers hide verbose messages.
func WithDebug(debug bool) TerminalOption {
	return func(s *TerminalSink) { s.debug = debug }
}

// NewTerminalSink creates a sink writing to w. Styling is on only when w is
// a terminal and NO_COLOR is not set; options may override that.
func NewTerminalSink(w io.Writer, opts ...TerminalOption) *TerminalSink {
	s := &TerminalSink{
		out:      w,
		renderer: lipgloss.NewRenderer(w),
		plain:    !tty.IsTerminalWriter(w) || tty.ColorDisabled(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default returns the platform console: a terminal sink on stderr.
func Default() Sink {
	return NewTerminalSink(os.Stderr)
}

// Emit writes the interpreted call as a single line.
func (s *TerminalSink) Emit(level Level, format string, args ...any) {
	if level == LevelDebug && !s.debug {
		return
	}
	line := s.Format(format, args...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		consoleLog.Printf("Failed to write %s line: %v", level, err)
	}
}

// Format renders a console call to a string without writing it.
func (s *TerminalSink) Format(format string, args ...any) string {
	segments, rest := Interpret(format, args)

	var b strings.Builder
	for _, seg := range segments {
		if s.plain || seg.CSS == "" {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(StyleFromCSS(s.renderer, seg.CSS).Render(seg.Text))
	}
	if len(rest) > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(JoinArgs(rest))
	}
	return b.String()
}

// FormatSuccessMessage formats a success message with styling
func FormatSuccessMessage(message string) string {
	return applyStyle(styles.Success, "✓ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(styles.Info, "ℹ ") + message
}

// FormatWarningMessage formats a warning message
func FormatWarningMessage(message string) string {
	return applyStyle(styles.Warning, "⚠ ") + message
}

// FormatErrorMessage formats an error message
func FormatErrorMessage(message string) string {
	return applyStyle(styles.Error, "✗ ") + message
}

// FormatVerboseMessage formats verbose debugging output
func FormatVerboseMessage(message string) string {
	return applyStyle(styles.Verbose, "🔍 "+message)
}

// FormatExpression highlights a style expression or shortcut name
func FormatExpression(expr string) string {
	return applyStyle(styles.Expression, expr)
}

// RenderTable renders a formatted table using lipgloss/table package
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		consoleLog.Print("No headers provided for table rendering")
		return ""
	}

	consoleLog.Printf("Rendering table: title=%s, columns=%d, rows=%d", config.Title, len(config.Headers), len(config.Rows))
	var output strings.Builder

	if config.Title != "" {
		output.WriteString(applyStyle(styles.TableTitle, config.Title))
		output.WriteString("\n")
	}

	styleFunc := func(row, col int) lipgloss.Style {
		if !isTTY() {
			return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
		}
		if row == table.HeaderRow {
			return styles.TableHeader.PaddingLeft(1).PaddingRight(1)
		}
		return styles.TableCell.PaddingLeft(1).PaddingRight(1)
	}

	t := table.New().
		Headers(config.Headers...).
		Rows(config.Rows...).
		Border(styles.RoundedBorder).
		BorderStyle(styles.TableBorder).
		StyleFunc(styleFunc)

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}
