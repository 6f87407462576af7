// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvPath names the environment variable that pins the config file.
const EnvPath = "MARQUEE_CONFIG"

// DefaultPath returns $XDG_CONFIG_HOME/marquee/config.toml, falling back to
// ~/.config and then the working directory.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "marquee", "config.toml")
}

// SearchPaths lists the files Discover tries, in order, when EnvPath is unset.
func SearchPaths() []string {
	return []string{
		"./config.toml",
		DefaultPath(),
		"/etc/marquee/config.toml",
	}
}

// Discover returns the config file to load. EnvPath wins when set and must
// exist; otherwise the first existing entry of SearchPaths is used.
func Discover() (string, error) {
	if envPath := os.Getenv(EnvPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvPath, envPath, err)
		}
		return envPath, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

// InitPath is where a new config is written when no path is given: EnvPath
// if set, so the file is the one Discover will pick, else DefaultPath.
func InitPath() string {
	if envPath := os.Getenv(EnvPath); envPath != "" {
		return envPath
	}
	return DefaultPath()
}
