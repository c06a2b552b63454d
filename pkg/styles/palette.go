package styles

import (
	"github.com/pearify/chalk/pkg/css"
	"github.com/pearify/chalk/pkg/stringutil"
)

// Swatch is a named palette entry.
type Swatch struct {
	Name string
	Hex  string
}

// BackgroundName is the shortcut name of the background variant, e.g. "bgRed".
func (s Swatch) BackgroundName() string {
	return "bg" + stringutil.Capitalize(s.Name)
}

// Palette is the closed set of named colors, in declaration order.
// gray and grey are aliases and resolve to the same hex value.
var Palette = []Swatch{
	{Name: "black", Hex: "#000000"},
	{Name: "red", Hex: "#ff6b6b"},
	{Name: "green", Hex: "#94d05f"},
	{Name: "yellow", Hex: "#ffd93d"},
	{Name: "blue", Hex: "#4dabf7"},
	{Name: "magenta", Hex: "#ff75c3"},
	{Name: "cyan", Hex: "#67e8f9"},
	{Name: "white", Hex: "#ffffff"},
	{Name: "gray", Hex: "#808080"},
	{Name: "grey", Hex: "#808080"},
}

// Modifier is a named declaration set that is not a color.
type Modifier struct {
	Name        string
	Declaration css.Declaration
}

// Modifiers lists the text modifiers. reset contributes an empty
// declaration set and only occupies a position in a chain.
var Modifiers = []Modifier{
	{Name: "bold", Declaration: css.Decl("fontWeight", "bold")},
	{Name: "dim", Declaration: css.Decl("opacity", "0.5")},
	{Name: "italic", Declaration: css.Decl("fontStyle", "italic")},
	{Name: "underline", Declaration: css.Decl("textDecoration", "underline")},
	{Name: "strikethrough", Declaration: css.Decl("textDecoration", "line-through")},
	{Name: "reset", Declaration: css.Declaration{}},
}

var (
	hexByName      = make(map[string]string, len(Palette))
	modifierByName = make(map[string]css.Declaration, len(Modifiers))
)

func init() {
	for _, s := range Palette {
		hexByName[s.Name] = s.Hex
	}
	for _, m := range Modifiers {
		modifierByName[m.Name] = m.Declaration
	}
}

// Hex returns the palette hex value for a color name.
func Hex(name string) (string, bool) {
	hex, ok := hexByName[name]
	return hex, ok
}

// ModifierDeclaration returns a copy of the declaration set for a modifier.
func ModifierDeclaration(name string) (css.Declaration, bool) {
	d, ok := modifierByName[name]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Pearify badge defaults.
const (
	BadgeColor    = "#94d05f"
	BigTextColor  = "#94d05f"
	LoggerDefault = "white"
)
