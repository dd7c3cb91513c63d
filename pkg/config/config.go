package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// DefaultPort is the development listener port.
	DefaultPort = 5000
	// DefaultModel is used when the config does not select one.
	DefaultModel = "claude-sonnet-4-20250514"
)

// Config represents the application configuration.
type Config struct {
	AnthropicAPIKey string `json:"anthropic_api_key"`
	Model           string `json:"model,omitempty"`
	Port            int    `json:"port,omitempty"`
	LogMode         string `json:"log_mode,omitempty"`
}

// GetModel returns the configured model or the default.
func (c *Config) GetModel() (model string) {
	if c.Model != "" {
		model = c.Model
		return model
	}
	model = DefaultModel
	return model
}

// GetPort returns the configured port or the default.
func (c *Config) GetPort() (port int) {
	if c.Port != 0 {
		port = c.Port
		return port
	}
	port = DefaultPort
	return port
}

// Load reads configuration from file with environment variable overrides.
// The file is optional: a missing file yields defaults, and a missing API
// key is not a load error - the generate path reports it at call time.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".career-compass", "config.json")
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Env-only configuration
			err = nil
			applyEnvOverrides(&cfg)
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Parse JSON
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	applyEnvOverrides(&cfg)

	return cfg, err
}

func applyEnvOverrides(cfg *Config) {
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.AnthropicAPIKey = apiKey
	}
	if mode := os.Getenv("LOG_MODE"); mode != "" {
		cfg.LogMode = mode
	}
}
