//go:build !js && !wasm

package console

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pearify/chalk/pkg/css"
)

// namedColors covers the CSS basic color keywords plus a few common
// extended ones. Anything else is ignored, as a console ignores unknown CSS.
var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"orange":  "#ffa500",
	"pink":    "#ffc0cb",
}

// StyleFromCSS converts a CSS declaration string into a lipgloss style
// built on r. Supported: color, background and background-color,
// font-weight, font-style, text-decoration, opacity. Later declarations
// override earlier ones.
func StyleFromCSS(r *lipgloss.Renderer, declaration string) lipgloss.Style {
	style := r.NewStyle()
	for _, p := range css.Parse(declaration) {
		v := strings.ToLower(p.Value)
		switch p.Name {
		case "color":
			if c, ok := ParseColor(v); ok {
				style = style.Foreground(c)
			}
		case "background", "background-color":
			if c, ok := ParseColor(v); ok {
				style = style.Background(c)
			}
		case "font-weight":
			style = style.Bold(isBold(v))
		case "font-style":
			style = style.Italic(v == "italic" || v == "oblique")
		case "text-decoration", "text-decoration-line":
			style = style.
				Underline(strings.Contains(v, "underline")).
				Strikethrough(strings.Contains(v, "line-through"))
		case "opacity":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				style = style.Faint(f < 1)
			}
		}
	}
	return style
}

func isBold(v string) bool {
	switch v {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 600
}

// ParseColor reads a CSS color value: #rgb, #rrggbb, rgb()/rgba() or a
// basic color keyword. rgb components are clamped to 0-255.
func ParseColor(v string) (lipgloss.Color, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(v)
		if err != nil {
			return "", false
		}
		return lipgloss.Color(c.Hex()), true
	case strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba("):
		return parseRGB(v)
	}
	if hex, ok := namedColors[v]; ok {
		return lipgloss.Color(hex), true
	}
	return "", false
}

func parseRGB(v string) (lipgloss.Color, bool) {
	open := strings.IndexByte(v, '(')
	if !strings.HasSuffix(v, ")") || open < 0 {
		return "", false
	}
	parts := strings.Split(v[open+1:len(v)-1], ",")
	if len(parts) < 3 {
		return "", false
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return "", false
		}
		ch[i] = math.Max(0, math.Min(255, f)) / 255
	}
	return lipgloss.Color(colorful.Color{R: ch[0], G: ch[1], B: ch[2]}.Hex()), true
}
