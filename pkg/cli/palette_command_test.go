//go:build !integration

package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pearify/chalk/pkg/stringutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPaletteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunPalette(&buf, true, false))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 26)

	assert.Equal(t, map[string]string{"name": "black", "kind": "color", "declaration": "color:#000000"}, rows[0])
	assert.Equal(t, map[string]string{"name": "bgGrey", "kind": "background", "declaration": "background-color:#808080"}, rows[19])
	assert.Equal(t, map[string]string{"name": "reset", "kind": "modifier", "declaration": "(none)"}, rows[25])
}

func TestRunPaletteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunPalette(&buf, false, false))

	out := stringutil.StripANSI(buf.String())
	for _, want := range []string{"Shortcuts", "Name", "Declaration", "magenta", "color:#ff75c3", "strikethrough", "text-decoration:line-through"} {
		assert.Contains(t, out, want)
	}
}

func TestPaletteTableSwatches(t *testing.T) {
	plain := paletteTable(false)
	painted := paletteTable(true)
	require.Len(t, painted.Rows, len(plain.Rows))

	for i := range plain.Rows {
		assert.Contains(t, stringutil.StripANSI(painted.Rows[i][0]), plain.Rows[i][0])
	}
}
