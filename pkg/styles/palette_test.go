//go:build !integration

package styles

import (
	"testing"

	"github.com/pearify/chalk/pkg/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteHasTenColors(t *testing.T) {
	assert.Len(t, Palette, 10)

	seen := make(map[string]bool)
	for _, s := range Palette {
		assert.False(t, seen[s.Name], "duplicate palette name %s", s.Name)
		seen[s.Name] = true
		assert.Regexp(t, `^#[0-9a-f]{6}$`, s.Hex, "palette entry %s", s.Name)
	}
}

func TestGrayGreyAlias(t *testing.T) {
	gray, ok := Hex("gray")
	require.True(t, ok)
	grey, ok := Hex("grey")
	require.True(t, ok)
	assert.Equal(t, gray, grey)
}

func TestHexLookup(t *testing.T) {
	hex, ok := Hex("red")
	require.True(t, ok)
	assert.Equal(t, "#ff6b6b", hex)

	_, ok = Hex("orange")
	assert.False(t, ok)
}

func TestBackgroundName(t *testing.T) {
	assert.Equal(t, "bgRed", Swatch{Name: "red"}.BackgroundName())
	assert.Equal(t, "bgGrey", Swatch{Name: "grey"}.BackgroundName())
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"bold", "font-weight:bold"},
		{"dim", "opacity:0.5"},
		{"italic", "font-style:italic"},
		{"underline", "text-decoration:underline"},
		{"strikethrough", "text-decoration:line-through"},
		{"reset", ""},
	}

	require.Len(t, Modifiers, len(tests))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ModifierDeclaration(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.expected, d.String())
		})
	}
}

func TestModifierDeclarationIsACopy(t *testing.T) {
	d, ok := ModifierDeclaration("bold")
	require.True(t, ok)
	d[0] = css.Property{Name: "color", Value: "red"}

	again, _ := ModifierDeclaration("bold")
	assert.Equal(t, "font-weight:bold", again.String())
}
