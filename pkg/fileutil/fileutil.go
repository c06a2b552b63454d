// Package fileutil reads the small text inputs chalk accepts: config files
// and batch files.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MaxInputSize bounds how much of an input file is read.
const MaxInputSize = 1 << 20

// ErrTooLarge is returned when a file exceeds MaxInputSize.
var ErrTooLarge = errors.New("file is too large")

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Resolve returns the cleaned absolute form of path.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return filepath.Clean(abs), nil
}

// ReadInput reads a regular file of at most MaxInputSize bytes.
func ReadInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	content, err := io.ReadAll(io.LimitReader(f, MaxInputSize+1))
	if err != nil {
		return nil, err
	}
	if len(content) > MaxInputSize {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", path, ErrTooLarge, MaxInputSize)
	}
	return content, nil
}
