package chalk

import (
	"sort"

	"github.com/pearify/chalk/pkg/css"
	"github.com/pearify/chalk/pkg/styles"
)

// ShortcutKind tells what a shortcut appends.
type ShortcutKind string

const (
	KindColor      ShortcutKind = "color"
	KindBackground ShortcutKind = "background"
	KindModifier   ShortcutKind = "modifier"
)

// ShortcutInfo describes one registered shortcut.
type ShortcutInfo struct {
	Name        string
	Kind        ShortcutKind
	Declaration css.Declaration
}

type shortcut struct {
	info  ShortcutInfo
	apply func(Chain) Chain
}

// shortcuts is filled once in init and read-only afterwards.
var (
	shortcuts     = map[string]shortcut{}
	shortcutOrder []string
)

func init() {
	register := func(name string, kind ShortcutKind, decl css.Declaration) {
		shortcuts[name] = shortcut{
			info: ShortcutInfo{Name: name, Kind: kind, Declaration: decl},
			apply: func(c Chain) Chain {
				return c.With(decl)
			},
		}
		shortcutOrder = append(shortcutOrder, name)
	}

	for _, s := range styles.Palette {
		register(s.Name, KindColor, css.Decl("color", s.Hex))
	}
	for _, s := range styles.Palette {
		register(s.BackgroundName(), KindBackground, css.Decl("backgroundColor", s.Hex))
	}
	for _, m := range styles.Modifiers {
		register(m.Name, KindModifier, m.Declaration)
	}
}

func modifierDecl(name string) (css.Declaration, bool) {
	if d, ok := styles.ModifierDeclaration(name); ok {
		return d, true
	}
	return css.Declaration{}, false
}

// Shortcut applies the named shortcut ("red", "bgBlue", "bold", ...).
// It reports false, and returns the receiver, for unknown names.
func (c Chain) Shortcut(name string) (Chain, bool) {
	s, ok := shortcuts[name]
	if !ok {
		return c, false
	}
	return s.apply(c), true
}

// Shortcuts lists every registered shortcut in registration order:
// colors, then backgrounds, then modifiers.
func Shortcuts() []ShortcutInfo {
	out := make([]ShortcutInfo, 0, len(shortcutOrder))
	for _, name := range shortcutOrder {
		info := shortcuts[name].info
		info.Declaration = info.Declaration.Clone()
		out = append(out, info)
	}
	return out
}

// ShortcutNames returns the shortcut names sorted alphabetically.
func ShortcutNames() []string {
	names := make([]string, len(shortcutOrder))
	copy(names, shortcutOrder)
	sort.Strings(names)
	return names
}

func (c Chain) must(name string) Chain {
	next, _ := c.Shortcut(name)
	return next
}

// Black, Red, Green, Yellow, Blue, Magenta, Cyan, White, Gray and Grey append
// {color: hex} with the palette value of the color. Gray and Grey are aliases.
func (c Chain) Black() Chain   { return c.must("black") }
func (c Chain) Red() Chain     { return c.must("red") }
func (c Chain) Green() Chain   { return c.must("green") }
func (c Chain) Yellow() Chain  { return c.must("yellow") }
func (c Chain) Blue() Chain    { return c.must("blue") }
func (c Chain) Magenta() Chain { return c.must("magenta") }
func (c Chain) Cyan() Chain    { return c.must("cyan") }
func (c Chain) White() Chain   { return c.must("white") }
func (c Chain) Gray() Chain    { return c.must("gray") }
func (c Chain) Grey() Chain    { return c.must("grey") }

// BgBlack through BgGrey append {backgroundColor: hex} with the palette
// value of the color.
func (c Chain) BgBlack() Chain   { return c.must("bgBlack") }
func (c Chain) BgRed() Chain     { return c.must("bgRed") }
func (c Chain) BgGreen() Chain   { return c.must("bgGreen") }
func (c Chain) BgYellow() Chain  { return c.must("bgYellow") }
func (c Chain) BgBlue() Chain    { return c.must("bgBlue") }
func (c Chain) BgMagenta() Chain { return c.must("bgMagenta") }
func (c Chain) BgCyan() Chain    { return c.must("bgCyan") }
func (c Chain) BgWhite() Chain   { return c.must("bgWhite") }
func (c Chain) BgGray() Chain    { return c.must("bgGray") }
func (c Chain) BgGrey() Chain    { return c.must("bgGrey") }

// Bold, Dim, Italic, Underline and Strikethrough append the declaration set
// of the named modifier.
func (c Chain) Bold() Chain          { return c.must("bold") }
func (c Chain) Dim() Chain           { return c.must("dim") }
func (c Chain) Italic() Chain        { return c.must("italic") }
func (c Chain) Underline() Chain     { return c.must("underline") }
func (c Chain) Strikethrough() Chain { return c.must("strikethrough") }

// Reset appends an empty declaration set. It changes no style.
func (c Chain) Reset() Chain { return c.must("reset") }
