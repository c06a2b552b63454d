package constants

import "path/filepath"

// CLIName is the name used in user-facing output to refer to the CLI.
const CLIName CommandName = "chalk"

// CommandName represents the name a command is invoked by.
type CommandName string

// String returns the string representation of the command name
func (c CommandName) String() string {
	return string(c)
}

// EnvVarName represents an environment variable name.
type EnvVarName string

// String returns the string representation of the environment variable name
func (e EnvVarName) String() string {
	return string(e)
}

// Environment variables read by chalk.
const (
	// EnvConfig points at a config file and takes precedence over discovery.
	EnvConfig EnvVarName = "CHALK_CONFIG"
	// EnvDebug selects debug logger namespaces.
	EnvDebug EnvVarName = "DEBUG"
	// EnvNoColor disables terminal styling when non-empty.
	EnvNoColor EnvVarName = "NO_COLOR"
)

// DefaultConfigFileName is looked up in the working directory when no
// config path is given.
const DefaultConfigFileName = ".chalk.yaml"

// DefaultBadgeLabel is the application badge printed before every logger line.
const DefaultBadgeLabel = "Pearify"

// MaxBatchConcurrency bounds the goroutines used to render a batch file.
const MaxBatchConcurrency = 8

// GetConfigPath returns the default config file path inside dir.
func GetConfigPath(dir string) string {
	return filepath.Join(dir, DefaultConfigFileName)
}
