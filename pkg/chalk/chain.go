// Package chalk builds console "%c" format strings from chained styles.
//
// A Chain is an immutable value. Every style call returns a new chain with
// one more CSS declaration set, so a chain can be kept and extended from
// any number of call sites:
//
//	warn := chalk.Default.Bold().Yellow()
//	r := warn.Apply("careful", "now")
//	console.Default().Emit(console.LevelLog, r.Format, r.CSS)
//
// Rendering is pure; nothing in this package writes to a console except
// Logger, which hands the rendered tuple to a console.Sink.
package chalk

import (
	"strconv"

	"github.com/pearify/chalk/pkg/css"
	"github.com/pearify/chalk/pkg/logger"
	"github.com/pearify/chalk/pkg/stringutil"
)

var chainLog = logger.New("chalk:chain")

// Default is the chain with no declarations. All other chains derive from it.
var Default = Chain{}

// bigBlock is appended by Big after the chain's own declarations.
var (
	bigBlock    = css.Decl("fontSize", "50px", "fontWeight", "bold", "WebkitTextStroke", "1px black")
	shadowBlock = css.Decl("textShadow", "3px 3px 0 #000")
)

// Chain accumulates CSS declaration sets. The zero value is the empty
// chain with text shadow enabled.
type Chain struct {
	decls    []css.Declaration
	noShadow bool
}

// Rendered is the argument pair handed to a console: a format string whose
// single %c consumes CSS.
type Rendered struct {
	Format string
	CSS    string
}

// Args returns the rendered pair as console arguments, followed by extra.
func (r Rendered) Args(extra ...any) []any {
	args := make([]any, 0, 2+len(extra))
	args = append(args, r.Format, r.CSS)
	return append(args, extra...)
}

// With returns a new chain with decl appended. The receiver is unchanged.
func (c Chain) With(decl css.Declaration) Chain {
	decls := make([]css.Declaration, len(c.decls), len(c.decls)+1)
	copy(decls, c.decls)
	decls = append(decls, decl.Clone())
	return Chain{decls: decls, noShadow: c.noShadow}
}

// Len is the number of declaration sets in the chain.
func (c Chain) Len() int { return len(c.decls) }

// Declarations returns a copy of the chain's declaration sets.
func (c Chain) Declarations() []css.Declaration {
	out := make([]css.Declaration, len(c.decls))
	for i, d := range c.decls {
		out[i] = d.Clone()
	}
	return out
}

// CSS renders the chain's declarations without any text.
func (c Chain) CSS() string {
	return css.Join(c.decls)
}

// Render returns "%c"+text and the chain's CSS.
func (c Chain) Render(text string) Rendered {
	return Rendered{Format: "%c" + text, CSS: c.CSS()}
}

// Apply joins fragments with spaces and renders them.
func (c Chain) Apply(fragments ...string) Rendered {
	return c.Render(stringutil.JoinFragments(fragments...))
}

// Big renders text as a large banner: the chain's CSS followed by a 50px
// bold font with a black stroke and, when enabled, a hard text shadow.
func (c Chain) Big(text string) Rendered {
	block := []css.Declaration{bigBlock}
	if !c.noShadow {
		block = append(block, shadowBlock)
	}
	style := css.Join(block)
	if base := c.CSS(); base != "" {
		style = base + ";" + style
	}
	chainLog.Printf("Rendering big text: declarations=%d, shadow=%t", len(c.decls), !c.noShadow)
	return Rendered{Format: "%c" + text, CSS: style}
}

// BigApply joins fragments with spaces and renders them with Big.
func (c Chain) BigApply(fragments ...string) Rendered {
	return c.Big(stringutil.JoinFragments(fragments...))
}

// ShadowEnabled reports whether Big adds a text shadow.
func (c Chain) ShadowEnabled() bool { return !c.noShadow }

// EnableShadow returns a copy of the chain with text shadow on.
func (c Chain) EnableShadow() Chain {
	c.noShadow = false
	return c
}

// DisableShadow returns a copy of the chain with text shadow off.
func (c Chain) DisableShadow() Chain {
	c.noShadow = true
	return c
}

// Color appends {color: value}. The value is not validated.
func (c Chain) Color(value string) Chain {
	return c.With(css.Decl("color", value))
}

// Custom is Color under the name used by script callers.
func (c Chain) Custom(value string) Chain { return c.Color(value) }

// Hex appends a color given as a hex string. The value is not validated.
func (c Chain) Hex(hex string) Chain { return c.Color(hex) }

// Background appends {backgroundColor: value}.
func (c Chain) Background(value string) Chain {
	return c.With(css.Decl("backgroundColor", value))
}

// CustomBg is Background under the name used by script callers.
func (c Chain) CustomBg(value string) Chain { return c.Background(value) }

// RGB appends {color: "rgb(r,g,b)"}. Components outside 0-255 are passed
// through unchanged.
func (c Chain) RGB(r, g, b int) Chain {
	return c.Color("rgb(" + strconv.Itoa(r) + "," + strconv.Itoa(g) + "," + strconv.Itoa(b) + ")")
}

// Modifier appends the declaration set of a named modifier. An unknown
// name appends an empty set, the same as reset.
func (c Chain) Modifier(name string) Chain {
	decl, ok := modifierDecl(name)
	if !ok {
		chainLog.Printf("Unknown modifier %q, appending empty declaration", name)
	}
	return c.With(decl)
}
