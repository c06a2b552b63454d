// Package config loads the chalk configuration file.
//
// The file is YAML and is validated against an embedded JSON schema before
// it is decoded:
//
//	badge:
//	  label: Pearify
//	  color: "#94d05f"
//	loggers:
//	  net: "#4dabf7"
//	big-text:
//	  color: "#ff75c3"
//	  shadow: false
//	output: auto
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pearify/chalk/pkg/chalk"
	"github.com/pearify/chalk/pkg/console"
	"github.com/pearify/chalk/pkg/constants"
	"github.com/pearify/chalk/pkg/fileutil"
	"github.com/pearify/chalk/pkg/logger"
	"github.com/pearify/chalk/pkg/styles"
)

var configLog = logger.New("config:config")

// Output modes.
const (
	OutputAuto  = "auto"
	OutputColor = "color"
	OutputPlain = "plain"
)

// File is the decoded configuration.
type File struct {
	Badge   Badge             `yaml:"badge,omitempty" json:"badge,omitempty" jsonschema:"application badge printed before every logger line"`
	Loggers map[string]string `yaml:"loggers,omitempty" json:"loggers,omitempty" jsonschema:"badge color per logger name"`
	BigText BigText           `yaml:"big-text,omitempty" json:"big-text,omitempty" jsonschema:"defaults for big banner text"`
	Output  string            `yaml:"output,omitempty" json:"output,omitempty" jsonschema:"terminal styling: auto, color or plain"`
}

// Badge configures the application badge.
type Badge struct {
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// BigText configures banner text.
type BigText struct {
	Color  string `yaml:"color,omitempty" json:"color,omitempty"`
	Shadow *bool  `yaml:"shadow,omitempty" json:"shadow,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *File {
	f := &File{}
	f.applyDefaults()
	return f
}

func (f *File) applyDefaults() {
	if f.Badge.Label == "" {
		f.Badge.Label = constants.DefaultBadgeLabel
	}
	if f.Badge.Color == "" {
		f.Badge.Color = styles.BadgeColor
	}
	if f.BigText.Color == "" {
		f.BigText.Color = styles.BigTextColor
	}
	if f.Output == "" {
		f.Output = OutputAuto
	}
	if f.Loggers == nil {
		f.Loggers = map[string]string{}
	}
}

// Parse validates and decodes YAML content. Empty content yields Default.
func Parse(content []byte) (*File, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return Default(), nil
	}

	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	// Comments or a bare document marker decode to nothing.
	if doc == nil {
		configLog.Print("Config has no content, using defaults")
		return Default(), nil
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	f.applyDefaults()
	return &f, nil
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	configLog.Printf("Loading config: %s", path)
	content, err := fileutil.ReadInput(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	f, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Discover returns the config path to use: explicit when set, then the
// CHALK_CONFIG environment variable, then .chalk.yaml in dir if it exists.
// It returns "" when there is nothing to load.
func Discover(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(constants.EnvConfig.String()); env != "" {
		return env
	}
	if path := constants.GetConfigPath(dir); fileutil.FileExists(path) {
		return path
	}
	return ""
}

// LoadOrDefault loads the discovered config, or returns Default when no
// file is found. The returned path is "" in that case.
func LoadOrDefault(explicit, dir string) (*File, string, error) {
	path := Discover(explicit, dir)
	if path == "" {
		configLog.Print("No config file found, using defaults")
		return Default(), "", nil
	}
	f, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return f, path, nil
}

// LoggerColor returns the configured color for a logger name, or "".
func (f *File) LoggerColor(name string) string {
	return f.Loggers[name]
}

// Shadow reports whether banner text gets a shadow. Defaults to true.
func (f *File) Shadow() bool {
	return f.BigText.Shadow == nil || *f.BigText.Shadow
}

// NewLogger creates a logger using the configured badge and the logger's
// configured color. A non-empty color argument wins over the file.
func (f *File) NewLogger(name, color string, sink console.Sink) *chalk.Logger {
	if color == "" {
		color = f.LoggerColor(name)
	}
	return chalk.NewLogger(name, color,
		chalk.WithSink(sink),
		chalk.WithBadge(f.Badge.Label, f.Badge.Color),
	)
}

// ErrInvalidOutput is returned by ValidateOutput.
var ErrInvalidOutput = errors.New("output must be auto, color or plain")

// ValidateOutput checks an output mode given outside the file, e.g. a flag.
func ValidateOutput(mode string) error {
	switch mode {
	case OutputAuto, OutputColor, OutputPlain:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidOutput, mode)
}
