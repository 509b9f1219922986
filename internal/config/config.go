// Package config loads the optional teamscdr config file.
//
// The file lives at ~/.teamscdr/config.toml and carries defaults for values
// that would otherwise be passed as flags on every run. Flags and environment
// variables always win over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the parsed config file.
type Config struct {
	Auth   AuthConfig   `toml:"auth"`
	Output OutputConfig `toml:"output"`
}

// AuthConfig carries tenant and application defaults for the token exchange.
type AuthConfig struct {
	TenantID     string `toml:"tenant_id"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// OutputConfig carries record output defaults.
type OutputConfig struct {
	// Format is one of "table", "csv" or "json".
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "table"},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".teamscdr", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// a malformed file is an error. Empty fields fall back to the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = Default().Output.Format
	}

	return cfg, nil
}
