package chalk

import (
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/pearify/chalk/pkg/css"
	"github.com/pearify/chalk/pkg/styles"
)

// Logger prefixes console output with two badges: the application badge
// ("Pearify") and a badge with the logger's name in the logger's color.
type Logger struct {
	name       string
	color      string
	badge      string
	badgeColor string
	sink       console.Sink
}

// LoggerOption configures a Logger.
type LoggerOption func(*Logger)

// WithSink sends the logger's output to sink instead of the platform console.
func WithSink(sink console.Sink) LoggerOption {
	return func(l *Logger) { l.sink = sink }
}

// WithBadge replaces the application badge label and color.
func WithBadge(label, color string) LoggerOption {
	return func(l *Logger) {
		l.badge = label
		l.badgeColor = color
	}
}

// NewLogger creates a logger named name. An empty color means white.
func NewLogger(name, color string, opts ...LoggerOption) *Logger {
	if color == "" {
		color = styles.LoggerDefault
	}
	l := &Logger{
		name:       name,
		color:      color,
		badge:      constants.DefaultBadgeLabel,
		badgeColor: styles.BadgeColor,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.sink == nil {
		l.sink = console.Default()
	}
	return l
}

// Name returns the logger's name.
func (l *Logger) Name() string { return l.name }

// Color returns the logger's badge color.
func (l *Logger) Color() string { return l.color }

// BadgeCSS is the CSS of a rounded pill with a colored background.
func BadgeCSS(color string) string {
	return Default.With(css.Decl(
		"background", color,
		"color", "black",
		"fontWeight", "bold",
		"borderRadius", "5px",
	)).CSS()
}

// Title returns console arguments that print title as a single badge.
func Title(color, title string) []any {
	return []any{"%c %c %s ", "", BadgeCSS(color), title}
}

func (l *Logger) emit(level console.Level, customFmt string, args []any) {
	format := "%c " + l.badge + " %c %c " + l.name + " " + customFmt
	out := make([]any, 0, 3+len(args))
	out = append(out, BadgeCSS(l.badgeColor), "", BadgeCSS(l.color))
	out = append(out, args...)
	l.sink.Emit(level, format, out...)
}

// Log writes args through console.log.
func (l *Logger) Log(args ...any) { l.emit(console.LevelLog, "", args) }

// Info writes args through console.info.
func (l *Logger) Info(args ...any) { l.emit(console.LevelInfo, "", args) }

// Warn writes args through console.warn.
func (l *Logger) Warn(args ...any) { l.emit(console.LevelWarn, "", args) }

// Error writes args through console.error.
func (l *Logger) Error(args ...any) { l.emit(console.LevelError, "", args) }

// Debug writes args through console.debug.
func (l *Logger) Debug(args ...any) { l.emit(console.LevelDebug, "", args) }

// ErrorCustomFmt writes an error whose format continues with customFmt
// after the badges, so customFmt may carry its own %c or %s directives.
func (l *Logger) ErrorCustomFmt(customFmt string, args ...any) {
	l.emit(console.LevelError, customFmt, args)
}

// BigText prints text as a large banner in color, with or without the
// text shadow.
func BigText(sink console.Sink, text, color string, shadow bool) {
	if color == "" {
		color = styles.BigTextColor
	}
	chain := Default.Color(color)
	if !shadow {
		chain = chain.DisableShadow()
	}
	r := chain.Big(text)
	sink.Emit(console.LevelLog, r.Format, r.CSS)
}
