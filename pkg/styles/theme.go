//go:build !js && !wasm

// Package styles holds the constant color and modifier tables used by style
// chains, and the lipgloss theme used for the chalk command line output.
//
// # Palette
//
// Palette and Modifiers are fixed at init and never mutated, so they can be
// read from any goroutine.
//
// # Terminal theme
//
// The terminal theme uses lipgloss.AdaptiveColor so CLI messages stay
// readable on light and dark backgrounds. Dark variants reuse the palette.
//
//	fmt.Println(styles.Error.Render("Something went wrong"))
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// ColorError is used for error messages.
	ColorError = lipgloss.AdaptiveColor{
		Light: "#D73737",
		Dark:  "#FF6B6B",
	}

	// ColorWarning is used for warnings.
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#B7950B",
		Dark:  "#FFD93D",
	}

	// ColorSuccess is the Pearify green.
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#4E8A1F",
		Dark:  "#94D05F",
	}

	// ColorInfo is used for informational messages
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#1971C2",
		Dark:  "#4DABF7",
	}

	// ColorAccent marks shortcut names and expressions
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#C2255C",
		Dark:  "#FF75C3",
	}

	ColorComment = lipgloss.AdaptiveColor{
		Light: "#6C7A89",
		Dark:  "#808080",
	}

	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#BDC3C7",
		Dark:  "#44475A",
	}
)

// RoundedBorder is used for tables.
var RoundedBorder = lipgloss.RoundedBorder()

// Error style for error messages - bold red
var Error = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorError)

// Warning style for warning messages - bold yellow
var Warning = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWarning)

// Success style for success messages - bold green
var Success = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorSuccess)

// Info style for informational messages - bold blue
var Info = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorInfo)

// Expression style for chain expressions and shortcut names
var Expression = lipgloss.NewStyle().
	Foreground(ColorAccent)

// Verbose style for verbose output - italic muted
var Verbose = lipgloss.NewStyle().
	Italic(true).
	Foreground(ColorComment)

// TableHeader style for table headers - bold muted
var TableHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorComment)

// TableCell style for regular table cells
var TableCell = lipgloss.NewStyle()

// TableTitle style for table titles - bold green
var TableTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorSuccess)

// TableBorder style for table borders
var TableBorder = lipgloss.NewStyle().
	Foreground(ColorBorder)

// SwatchStyle returns a style that paints a palette entry as a background block.
func SwatchStyle(s Swatch) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(s.Hex)).
		Foreground(lipgloss.Color("#000000"))
}
