// Package logger provides namespaced debug logging in the style of the
// "debug" npm package.
//
// Loggers are created once per file:
//
//	var chainLog = logger.New("chalk:chain")
//
// and print only when the DEBUG environment variable selects their
// namespace. DEBUG is a comma separated list of patterns; "*" matches any
// run of characters and a leading "-" excludes:
//
//	DEBUG=*                   everything
//	DEBUG=chalk:*             every namespace under chalk
//	DEBUG=*,-console:format   everything except one namespace
//
// Output goes to stderr as "namespace message +elapsed". The namespace is
// colored when stderr is a terminal and DEBUG_COLORS is not "0".
package logger

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/pearify/chalk/pkg/tty"
)

// namespaceColors are picked by hashing the namespace.
var namespaceColors = []string{"#4dabf7", "#94d05f", "#ffd93d", "#ff75c3", "#67e8f9", "#ff6b6b"}

var (
	outMu  sync.Mutex
	output io.Writer = os.Stderr
)

// Logger writes debug messages for one namespace.
type Logger struct {
	namespace string
	enabled   bool
	style     lipgloss.Style
	colored   bool

	mu   sync.Mutex
	last time.Time
}

// New creates a logger for namespace. Whether it prints is decided once,
// from DEBUG, at creation time.
func New(namespace string) *Logger {
	colored := tty.IsStderrTerminal() && os.Getenv("DEBUG_COLORS") != "0" && !tty.ColorDisabled()
	return &Logger{
		namespace: namespace,
		enabled:   matchDebug(namespace, os.Getenv(constants.EnvDebug.String())),
		style:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorFor(namespace))),
		colored:   colored,
	}
}

// Enabled reports whether the logger prints.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf prints a formatted message when the logger is enabled.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print prints its arguments, space separated, when the logger is enabled.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (l *Logger) write(msg string) {
	now := time.Now()
	l.mu.Lock()
	var elapsed time.Duration
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now
	l.mu.Unlock()

	ns := l.namespace
	if l.colored {
		ns = l.style.Render(ns)
	}

	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(output, "%s %s +%s\n", ns, msg, formatElapsed(elapsed))
}

func formatElapsed(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.1fm", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

func colorFor(namespace string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(namespace))
	return namespaceColors[h.Sum32()%uint32(len(namespaceColors))]
}

// matchDebug reports whether namespace is selected by a DEBUG value.
// Exclusions win over inclusions regardless of order.
func matchDebug(namespace, debug string) bool {
	if debug == "" {
		return false
	}
	included := false
	for _, pattern := range strings.Split(debug, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.HasPrefix(pattern, "-") {
			if matchPattern(pattern[1:], namespace) {
				return false
			}
			continue
		}
		if matchPattern(pattern, namespace) {
			included = true
		}
	}
	return included
}

// matchPattern matches s against a pattern where '*' matches any run of
// characters, including ':'.
func matchPattern(pattern, s string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == s
	}
	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]
	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(s, part)
		if idx < 0 {
			return false
		}
		s = s[idx+len(part):]
	}
	return strings.HasSuffix(s, last)
}
