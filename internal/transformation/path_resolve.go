package transformation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotDirectory = errors.New("not a directory")

// ExpandPath turns a user supplied path into a clean absolute path, expanding a leading ~.
// An empty input stays empty so callers can fall back to their own default.
func ExpandPath(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	if input == "~" || strings.HasPrefix(input, "~/") || strings.HasPrefix(input, `~\`) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", input, err)
		}
		input = filepath.Join(homeDir, input[1:])
	}

	return filepath.Abs(filepath.Clean(input))
}

// ResolveDirectory expands input and requires it to name an existing directory.
func ResolveDirectory(input string) (string, error) {
	absPath, err := ExpandPath(input)
	if err != nil {
		return "", err
	}
	if absPath == "" {
		return "", errors.New("path is empty")
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", absPath, ErrNotDirectory)
	}

	return absPath, nil
}
