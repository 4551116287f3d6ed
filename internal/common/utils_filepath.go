package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ToAbsolutePath converts a relative file path into an absolute one,
// and expands '~' to the current user's home directory.
func ToAbsolutePath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		if path == "~" {
			path = homeDir
		} else if strings.HasPrefix(path, "~/") {
			path = filepath.Join(homeDir, path[2:])
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert path to absolute: %w", err)
	}

	return absPath, nil
}
