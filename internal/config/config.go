// Package config loads ecnctl settings from the environment, with an
// optional TOML config file as a fallback for values the environment does
// not provide.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DatabaseURL string // ECNCTL_DATABASE_URL (required)
	NATSURL     string // ECNCTL_NATS_URL (optional, empty = no change events)
}

// fileConfig mirrors Config in the on-disk TOML file.
type fileConfig struct {
	DatabaseURL string `toml:"database_url"`
	NATSURL     string `toml:"nats_url"`
}

// Load reads the environment and the config file at Path(). Environment
// values win; a missing config file is not an error, a malformed one is.
func Load() (*Config, error) {
	return load(Path())
}

func load(path string) (*Config, error) {
	var fc fileConfig
	if path != "" {
		if _, err := toml.DecodeFile(path, &fc); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	c := &Config{
		DatabaseURL: firstNonEmpty(os.Getenv("ECNCTL_DATABASE_URL"), fc.DatabaseURL),
		NATSURL:     firstNonEmpty(os.Getenv("ECNCTL_NATS_URL"), fc.NATSURL),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("ECNCTL_DATABASE_URL is required (or database_url in %s)", path)
	}
	return c, nil
}

// Path returns the config file location: ECNCTL_CONFIG if set, otherwise
// ecnctl/config.toml under the user config directory.
func Path() string {
	if p := os.Getenv("ECNCTL_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ecnctl", "config.toml")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
