// Package config handles loading the tm config.toml configuration file.
//
// Values from the config file are overridden by environment variables:
// DEEPSEEK_API_KEY, DEEPSEEK_BASE_URL, DEEPSEEK_MODEL, and TM_DATA_DIR.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/tmcli/tm/internal/paths"
)

// Config represents the config.toml configuration file.
type Config struct {
	DeepSeek DeepSeek `toml:"deepseek"`
	Storage  Storage  `toml:"storage"`
}

// DeepSeek contains generation-endpoint configuration.
type DeepSeek struct {
	// APIKey is the bearer credential for the chat-completion endpoint.
	APIKey string `toml:"api-key"`

	// BaseURL overrides the endpoint base URL.
	BaseURL string `toml:"base-url"`

	// Model overrides the model name.
	Model string `toml:"model"`
}

// Storage contains persistence configuration.
type Storage struct {
	// DataDir overrides where the task list snapshot is stored.
	DataDir string `toml:"data-dir"`
}

// Load loads configuration from the default config file path.
// Returns an empty config (plus env overrides) if no config file exists.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path, applying environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if value := os.Getenv("DEEPSEEK_API_KEY"); value != "" {
		c.DeepSeek.APIKey = value
	}
	if value := os.Getenv("DEEPSEEK_BASE_URL"); value != "" {
		c.DeepSeek.BaseURL = value
	}
	if value := os.Getenv("DEEPSEEK_MODEL"); value != "" {
		c.DeepSeek.Model = value
	}
	if value := os.Getenv("TM_DATA_DIR"); value != "" {
		c.Storage.DataDir = value
	}
}

// DataDir returns the configured data directory, or the default when unset.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	return paths.DefaultDataDir()
}
