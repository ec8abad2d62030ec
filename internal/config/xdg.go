// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigDir returns the directory holding misstype's config and word list.
func DefaultConfigDir() string {
	return filepath.Join(XDGConfigHome(), "misstype")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.toml")
}

// DefaultWordListPath picks words.txt in the working directory when present,
// otherwise the one in the config directory.
func DefaultWordListPath() string {
	if _, err := os.Stat("words.txt"); err == nil {
		return "words.txt"
	}
	return filepath.Join(DefaultConfigDir(), "words.txt")
}
