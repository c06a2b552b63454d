package chalk

import (
	"fmt"
	"strconv"
	"strings"
)

// ExprError reports a malformed chain expression.
type ExprError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *ExprError) Error() string {
	return fmt.Sprintf("invalid style expression %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

type exprCall func(c Chain, args string) (Chain, error)

func singleArg(apply func(Chain, string) Chain) exprCall {
	return func(c Chain, args string) (Chain, error) {
		v := unquote(strings.TrimSpace(args))
		if v == "" {
			return c, fmt.Errorf("expects one argument")
		}
		return apply(c, v), nil
	}
}

var exprCalls = map[string]exprCall{
	"hex":        singleArg(Chain.Hex),
	"custom":     singleArg(Chain.Custom),
	"color":      singleArg(Chain.Color),
	"bg":         singleArg(Chain.Background),
	"bgHex":      singleArg(Chain.Background),
	"customBg":   singleArg(Chain.CustomBg),
	"background": singleArg(Chain.Background),
	"modifier":   singleArg(Chain.Modifier),
	"rgb": func(c Chain, args string) (Chain, error) {
		parts := strings.Split(args, ",")
		if len(parts) != 3 {
			return c, fmt.Errorf("rgb expects 3 arguments, got %d", len(parts))
		}
		var v [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return c, fmt.Errorf("rgb component %q is not an integer", strings.TrimSpace(p))
			}
			v[i] = n
		}
		return c.RGB(v[0], v[1], v[2]), nil
	},
}

var exprFlags = map[string]func(Chain) Chain{
	"shadow":        Chain.EnableShadow,
	"enableShadow":  Chain.EnableShadow,
	"noShadow":      Chain.DisableShadow,
	"disableShadow": Chain.DisableShadow,
}

// Parse builds a chain from a dotted expression such as
//
//	bold.red.bgHex(#222222).rgb(10,20,30).noShadow
//
// starting from Default. Bare names are shortcuts or shadow flags; calls
// take a single value except rgb, which takes three integers. Values may be
// quoted and may contain parentheses and dots.
func Parse(expr string) (Chain, error) {
	return Default.Extend(expr)
}

// Extend applies a dotted expression to c. See Parse. On error c is
// returned unchanged.
func (c Chain) Extend(expr string) (Chain, error) {
	base := c
	pos := 0
	for pos < len(expr) {
		start := pos
		for pos < len(expr) && isIdentByte(expr[pos]) {
			pos++
		}
		name := expr[start:pos]
		if name == "" {
			return base, &ExprError{Expr: expr, Pos: pos, Msg: "expected a shortcut name"}
		}

		if pos < len(expr) && expr[pos] == '(' {
			end, ok := matchParen(expr, pos)
			if !ok {
				return base, &ExprError{Expr: expr, Pos: pos, Msg: "unbalanced parenthesis"}
			}
			call, ok := exprCalls[name]
			if !ok {
				return base, &ExprError{Expr: expr, Pos: start, Msg: fmt.Sprintf("unknown call %q", name)}
			}
			next, err := call(c, expr[pos+1:end])
			if err != nil {
				return base, &ExprError{Expr: expr, Pos: start, Msg: name + ": " + err.Error()}
			}
			c = next
			pos = end + 1
		} else if flag, ok := exprFlags[name]; ok {
			c = flag(c)
		} else if next, ok := c.Shortcut(name); ok {
			c = next
		} else {
			return base, &ExprError{Expr: expr, Pos: start, Msg: fmt.Sprintf("unknown shortcut %q", name)}
		}

		if pos < len(expr) {
			if expr[pos] != '.' {
				return base, &ExprError{Expr: expr, Pos: pos, Msg: fmt.Sprintf("unexpected %q", expr[pos])}
			}
			pos++
			if pos == len(expr) {
				return base, &ExprError{Expr: expr, Pos: pos, Msg: "trailing '.'"}
			}
		}
	}
	return c, nil
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// matchParen returns the index of the ')' closing the '(' at open.
// Parentheses inside quotes are ignored.
func matchParen(s string, open int) (int, bool) {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '(':
			depth++
		case ch == ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
