// Package config loads vita's optional TOML configuration file. Flags always
// override file values; the file just saves retyping the agent URL.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all vita configuration.
type Config struct {
	AgentURL              string `toml:"agent_url"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	InsecureSkipVerify    bool   `toml:"insecure_skip_verify"`
	HistoryLimit          int    `toml:"history_limit"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RequestTimeoutSeconds: 30,
		HistoryLimit:          200,
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	return cfg, nil
}

// ConfigDir returns the vita config directory path.
// Uses $XDG_CONFIG_HOME/vita if set, otherwise ~/.config/vita.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vita")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vita")
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "vita", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "vita", "config.toml"))
	}

	return paths
}
