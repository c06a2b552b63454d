//go:build !integration

package constants

import (
	"path/filepath"
	"testing"
)

func TestGetConfigPath(t *testing.T) {
	expected := filepath.Join("project", ".chalk.yaml")
	result := GetConfigPath("project")

	if result != expected {
		t.Errorf("GetConfigPath() = %q, want %q", result, expected)
	}
}

func TestNamesStringify(t *testing.T) {
	if CLIName.String() != "chalk" {
		t.Errorf("CLIName = %q, want %q", CLIName, "chalk")
	}
	if EnvConfig.String() != "CHALK_CONFIG" {
		t.Errorf("EnvConfig = %q, want %q", EnvConfig, "CHALK_CONFIG")
	}
}

func TestDefaultBadgeLabel(t *testing.T) {
	if DefaultBadgeLabel != "Pearify" {
		t.Errorf("DefaultBadgeLabel = %q, want %q", DefaultBadgeLabel, "Pearify")
	}
}
