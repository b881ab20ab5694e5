// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultLedgerFile is the backing file used when nothing is configured,
// relative to the working directory.
const DefaultLedgerFile = "transactions.csv"

// LedgerFile returns the configured backing file path, falling back to
// DefaultLedgerFile, with tilde and environment variables expanded.
func LedgerFile() string {
	path := viper.GetString("ledger.file")
	if path == "" {
		path = DefaultLedgerFile
	}
	return ExpandPath(path)
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
