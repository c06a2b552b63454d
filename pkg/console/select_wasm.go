//go:build js || wasm

package console

import "errors"

// IsAccessibleMode is always false in Wasm builds.
func IsAccessibleMode() bool {
	return false
}

// PromptMultiSelect is not available in Wasm builds.
func PromptMultiSelect(title, description string, options []SelectOption, limit int) ([]string, error) {
	return nil, errors.New("interactive selection not available in Wasm")
}
