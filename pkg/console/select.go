//go:build !js && !wasm

package console

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pearify/chalk/pkg/tty"
)

// IsAccessibleMode reports whether prompts should run in huh's accessible
// mode: ACCESSIBLE is set, or the terminal is dumb.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != "" || os.Getenv("TERM") == "dumb"
}

// PromptMultiSelect shows an interactive multi-select menu and returns the
// selected values.
func PromptMultiSelect(title, description string, options []SelectOption, limit int) ([]string, error) {
	if len(options) == 0 {
		return nil, errors.New("no options provided")
	}

	if !tty.IsStderrTerminal() {
		return nil, fmt.Errorf("interactive selection not available (not a TTY)")
	}

	var selected []string

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	multiSelect := huh.NewMultiSelect[string]().
		Title(title).
		Description(description).
		Options(huhOptions...).
		Value(&selected)

	if limit > 0 {
		multiSelect.Limit(limit)
	}

	form := huh.NewForm(huh.NewGroup(multiSelect)).WithAccessible(IsAccessibleMode())
	if err := form.Run(); err != nil {
		return nil, err
	}

	return selected, nil
}
