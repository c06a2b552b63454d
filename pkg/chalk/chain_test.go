//go:build !integration

package chalk

import (
	"strings"
	"sync"
	"testing"

	"github.com/pearify/chalk/pkg/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoldRedRender(t *testing.T) {
	r := Default.Bold().Red().Render("hi")
	assert.Equal(t, "%chi", r.Format)
	assert.Equal(t, "font-weight:bold;color:#ff6b6b", r.CSS)
}

func TestDefaultRendersEmptyCSS(t *testing.T) {
	r := Default.Render("plain")
	assert.Equal(t, "%cplain", r.Format)
	assert.Empty(t, r.CSS)
	assert.True(t, Default.ShadowEnabled())
	assert.Zero(t, Default.Len())
}

func TestApplyMatchesRenderOfJoinedText(t *testing.T) {
	c := Default.Custom("#123456").Underline()
	assert.Equal(t, c.Render("a b"), c.Apply("a", "b"))
	assert.Equal(t, "color:#123456;text-decoration:underline", c.Apply("a", "b").CSS)
	assert.Equal(t, c.Big("a b"), c.BigApply("a", "b"))
}

func TestRenderPreservesOrder(t *testing.T) {
	steps := []string{"bgBlue", "italic", "reset", "grey", "strikethrough", "red"}

	c := Default
	expected := make([]string, 0, len(steps))
	for _, name := range steps {
		var ok bool
		c, ok = c.Shortcut(name)
		require.True(t, ok, name)

		single, _ := Default.Shortcut(name)
		expected = append(expected, single.CSS())
	}

	assert.Equal(t, strings.Join(expected, ";"), c.Render("x").CSS)
	assert.Equal(t, "background-color:#4dabf7;font-style:italic;;color:#808080;text-decoration:line-through;color:#ff6b6b", c.CSS())
}

func TestBoldIsAlwaysFontWeight(t *testing.T) {
	bases := []Chain{Default, Default.Red(), Default.Bold(), Default.Reset().BgCyan().Dim()}
	for _, base := range bases {
		decls := base.Modifier("bold").Declarations()
		last := decls[len(decls)-1]
		assert.Equal(t, "font-weight:bold", last.String())
	}
}

func TestShadowToggle(t *testing.T) {
	on := Default.Red().EnableShadow().Big("Banner")
	assert.Contains(t, on.CSS, "text-shadow:3px 3px 0 #000")

	off := Default.Red().DisableShadow().Big("Banner")
	assert.NotContains(t, off.CSS, "text-shadow")
	assert.Equal(t, "%cBanner", off.Format)
	assert.Equal(t, "color:#ff6b6b;font-size:50px;font-weight:bold;-webkit-text-stroke:1px black", off.CSS)
}

func TestBigOnDefaultHasNoLeadingSeparator(t *testing.T) {
	r := Default.Big("x")
	assert.Equal(t, "font-size:50px;font-weight:bold;-webkit-text-stroke:1px black;text-shadow:3px 3px 0 #000", r.CSS)
}

func TestShadowFlagIsInherited(t *testing.T) {
	c := Default.DisableShadow().Bold().Green()
	assert.False(t, c.ShadowEnabled())
	assert.True(t, c.EnableShadow().Blue().ShadowEnabled())
	assert.Equal(t, c.CSS(), c.EnableShadow().CSS(), "toggling shadow keeps declarations")
}

func TestGrayGreyAliases(t *testing.T) {
	base := Default.Bold()
	assert.Equal(t, base.Gray().Render("t"), base.Grey().Render("t"))
	assert.Equal(t, base.BgGray().Render("t"), base.BgGrey().Render("t"))
}

func TestDerivationsAreIndependent(t *testing.T) {
	a := Default.Bold()
	before := a.Render("x")

	red := a.Red()
	blue := a.Blue()

	assert.Equal(t, before, a.Render("x"))
	assert.Equal(t, "font-weight:bold;color:#ff6b6b", red.CSS())
	assert.Equal(t, "font-weight:bold;color:#4dabf7", blue.CSS())
}

func TestDerivationsFromSharedCapacityDoNotAlias(t *testing.T) {
	// Build a base whose backing array has spare capacity, then branch twice.
	base := Default.Bold().Italic().Underline()
	x := base.Red()
	y := base.Blue()
	assert.Equal(t, "font-weight:bold;font-style:italic;text-decoration:underline;color:#ff6b6b", x.CSS())
	assert.Equal(t, "font-weight:bold;font-style:italic;text-decoration:underline;color:#4dabf7", y.CSS())
}

func TestWithCopiesDeclaration(t *testing.T) {
	decl := css.Decl("color", "red")
	c := Default.With(decl)
	decl[0].Value = "blue"
	assert.Equal(t, "color:red", c.CSS())

	got := c.Declarations()
	got[0][0].Value = "green"
	assert.Equal(t, "color:red", c.CSS())
}

func TestConcurrentDerivation(t *testing.T) {
	base := Default.Bold()
	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = base.Red().CSS()
			} else {
				results[i] = base.Blue().CSS()
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if i%2 == 0 {
			assert.Equal(t, "font-weight:bold;color:#ff6b6b", got)
		} else {
			assert.Equal(t, "font-weight:bold;color:#4dabf7", got)
		}
	}
	assert.Equal(t, "font-weight:bold", base.CSS())
}

func TestDerivedConstructors(t *testing.T) {
	tests := []struct {
		name     string
		chain    Chain
		expected string
	}{
		{name: "color", chain: Default.Color("tomato"), expected: "color:tomato"},
		{name: "hex", chain: Default.Hex("#abc"), expected: "color:#abc"},
		{name: "background", chain: Default.Background("#000"), expected: "background-color:#000"},
		{name: "customBg", chain: Default.CustomBg("navy"), expected: "background-color:navy"},
		{name: "rgb", chain: Default.RGB(1, 2, 3), expected: "color:rgb(1,2,3)"},
		{name: "rgb out of range passes through", chain: Default.RGB(300, -4, 256), expected: "color:rgb(300,-4,256)"},
		{name: "malformed hex passes through", chain: Default.Hex("#zz"), expected: "color:#zz"},
		{name: "modifier", chain: Default.Modifier("italic"), expected: "font-style:italic"},
		{name: "unknown modifier is empty", chain: Default.Modifier("blink").Red(), expected: ";color:#ff6b6b"},
		{name: "reset is empty", chain: Default.Reset(), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.chain.CSS())
		})
	}
}

func TestNamedShortcutMethods(t *testing.T) {
	methods := map[string]func(Chain) Chain{
		"black": Chain.Black, "red": Chain.Red, "green": Chain.Green, "yellow": Chain.Yellow,
		"blue": Chain.Blue, "magenta": Chain.Magenta, "cyan": Chain.Cyan, "white": Chain.White,
		"gray": Chain.Gray, "grey": Chain.Grey,
		"bgBlack": Chain.BgBlack, "bgRed": Chain.BgRed, "bgGreen": Chain.BgGreen, "bgYellow": Chain.BgYellow,
		"bgBlue": Chain.BgBlue, "bgMagenta": Chain.BgMagenta, "bgCyan": Chain.BgCyan, "bgWhite": Chain.BgWhite,
		"bgGray": Chain.BgGray, "bgGrey": Chain.BgGrey,
		"bold": Chain.Bold, "dim": Chain.Dim, "italic": Chain.Italic, "underline": Chain.Underline,
		"strikethrough": Chain.Strikethrough, "reset": Chain.Reset,
	}

	require.Len(t, Shortcuts(), len(methods))
	for name, method := range methods {
		t.Run(name, func(t *testing.T) {
			viaTable, ok := Default.Shortcut(name)
			require.True(t, ok)
			assert.Equal(t, viaTable.CSS(), method(Default).CSS())
			assert.Equal(t, 1, method(Default).Len())
		})
	}
}

func TestShortcutUnknown(t *testing.T) {
	c, ok := Default.Bold().Shortcut("orange")
	assert.False(t, ok)
	assert.Equal(t, "font-weight:bold", c.CSS())
}

func TestShortcutsOrderAndKinds(t *testing.T) {
	all := Shortcuts()
	require.Len(t, all, 26)
	assert.Equal(t, "black", all[0].Name)
	assert.Equal(t, KindColor, all[0].Kind)
	assert.Equal(t, "bgBlack", all[10].Name)
	assert.Equal(t, KindBackground, all[10].Kind)
	assert.Equal(t, "bold", all[20].Name)
	assert.Equal(t, KindModifier, all[20].Kind)

	names := ShortcutNames()
	assert.IsIncreasing(t, names)
}

func TestRenderedArgs(t *testing.T) {
	r := Default.Red().Render("x")
	assert.Equal(t, []any{"%cx", "color:#ff6b6b", 1, "two"}, r.Args(1, "two"))
	assert.Equal(t, []any{"%cx", "color:#ff6b6b"}, r.Args())
}
