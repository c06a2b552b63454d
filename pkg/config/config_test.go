//go:build !integration

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pearify/chalk/pkg/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	f := Default()
	assert.Equal(t, "Pearify", f.Badge.Label)
	assert.Equal(t, "#94d05f", f.Badge.Color)
	assert.Equal(t, "#94d05f", f.BigText.Color)
	assert.Equal(t, OutputAuto, f.Output)
	assert.True(t, f.Shadow())
	assert.Empty(t, f.LoggerColor("net"))
}

func TestParse(t *testing.T) {
	content := []byte(`
badge:
  label: Acme
loggers:
  net: "#4dabf7"
  db: magenta
big-text:
  shadow: false
output: plain
`)
	f, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "Acme", f.Badge.Label)
	assert.Equal(t, "#94d05f", f.Badge.Color, "unset fields fall back to defaults")
	assert.Equal(t, "#4dabf7", f.LoggerColor("net"))
	assert.Equal(t, "magenta", f.LoggerColor("db"))
	assert.False(t, f.Shadow())
	assert.Equal(t, OutputPlain, f.Output)
}

func TestParseEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "blank", content: "  \n"},
		{name: "comments only", content: "# chalk config\n# output: plain\n"},
		{name: "document marker only", content: "---\n"},
		{name: "marker and comments", content: "---\n# badge:\n#   label: Acme\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, Default(), f)
		})
	}
}

func TestLoadOrDefaultCommentedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".chalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("# loggers:\n#   net: blue\n"), 0o644))

	f, got, err := LoadOrDefault(path, dir)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, Default(), f)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown top-level key", content: "theme: dark\n"},
		{name: "unknown badge key", content: "badge:\n  size: 3\n"},
		{name: "bad output", content: "output: rainbow\n"},
		{name: "shadow not boolean", content: "big-text:\n  shadow: sometimes\n"},
		{name: "empty logger color", content: "loggers:\n  net: \"\"\n"},
		{name: "not a mapping", content: "- a\n- b\n"},
		{name: "broken yaml", content: "badge: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadAndDiscover(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHALK_CONFIG", "")

	assert.Empty(t, Discover("", dir))
	f, path, err := LoadOrDefault("", dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), f)

	cfgPath := filepath.Join(dir, ".chalk.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("badge:\n  label: Local\n"), 0o644))
	assert.Equal(t, cfgPath, Discover("", dir))

	f, path, err = LoadOrDefault("", dir)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
	assert.Equal(t, "Local", f.Badge.Label)

	envPath := filepath.Join(dir, "env.yaml")
	t.Setenv("CHALK_CONFIG", envPath)
	assert.Equal(t, envPath, Discover("", dir))
	assert.Equal(t, "explicit.yaml", Discover("explicit.yaml", dir))

	_, _, err = LoadOrDefault("", dir)
	assert.Error(t, err, "missing env config file should fail")
}

func TestNewLoggerUsesConfig(t *testing.T) {
	f, err := Parse([]byte("badge:\n  label: Acme\n  color: \"#000\"\nloggers:\n  net: \"#4dabf7\"\n"))
	require.NoError(t, err)

	rec := &console.Recorder{}
	f.NewLogger("net", "", rec).Info("up")
	f.NewLogger("net", "#fff", rec).Info("override")

	require.Len(t, rec.Calls, 2)
	assert.Equal(t, "%c Acme %c %c net ", rec.Calls[0].Format)
	assert.Contains(t, rec.Calls[0].Args[0], "background:#000")
	assert.Contains(t, rec.Calls[0].Args[2], "background:#4dabf7")
	assert.Contains(t, rec.Calls[1].Args[2], "background:#fff")
}

func TestValidateOutput(t *testing.T) {
	assert.NoError(t, ValidateOutput("color"))
	assert.ErrorIs(t, ValidateOutput("loud"), ErrInvalidOutput)
}

func TestGeneratedSchema(t *testing.T) {
	out, err := GeneratedSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema should describe properties")
	for _, key := range []string{"badge", "loggers", "big-text", "output"} {
		assert.Contains(t, props, key)
	}
}

func TestEmbeddedSchemaIsJSON(t *testing.T) {
	assert.True(t, json.Valid([]byte(EmbeddedSchema())))
}
