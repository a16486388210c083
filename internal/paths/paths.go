// Package paths resolves the default tm directories under the user's home.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default tm data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "tm"), nil
}

// DefaultConfigPath returns the default tm config file path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "tm", "config.toml"), nil
}
