// Package paths resolves the configuration directory and default database
// location for the skillet CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDatabaseName is the CWD-relative SQLite file used when nothing else
// names a database.
const DefaultDatabaseName = "skillet.db"

// Environment variable names for overrides.
const (
	EnvConfigDir = "SKILLET_CONFIG_DIR"
	EnvDatabase  = "SKILLET_DATABASE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/skillet (fallback ~/.config/skillet)
// macOS:   ~/Library/Application Support/skillet
// Windows: %APPDATA%/skillet
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "skillet"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "skillet"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "skillet"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SKILLET_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDatabase returns the database location following the precedence
// chain: flag > config value > SKILLET_DATABASE env > $(CWD)/skillet.db.
// For the SQLite driver this is a file path; for other drivers it is the
// database name and passes through untouched.
func ResolveDatabase(flag, configValue string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if configValue != "" {
		return configValue, nil
	}
	if env := os.Getenv(EnvDatabase); env != "" {
		return env, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDatabaseName), nil
}
