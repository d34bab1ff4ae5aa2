// Package config provides configuration management.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"neoncost/core/pricing"
	"neoncost/internal/errors"
	"neoncost/internal/logging"
)

// EnvAPIKey is the environment variable holding the Neon API key. The key
// is never read from the config file.
const EnvAPIKey = "NEON_API_KEY"

// EnvOrgID is the environment variable holding the default organization ID.
const EnvOrgID = "NEON_ORG_ID"

// Config is the main application configuration
type Config struct {
	// Neon contains Neon API client settings
	Neon NeonConfig `yaml:"neon"`

	// Output contains output settings
	Output OutputConfig `yaml:"output"`

	// Pricing optionally overrides the built-in Launch plan schedule
	Pricing *pricing.Schedule `yaml:"pricing,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `yaml:"logging"`
}

// NeonConfig contains Neon API settings
type NeonConfig struct {
	// BaseURL is the API base URL
	BaseURL string `yaml:"base_url"`

	// OrgID is the organization ID for org accounts
	OrgID string `yaml:"org_id,omitempty"`

	// TimeoutSeconds is the per-request HTTP timeout
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// Format is the default output format (text, json)
	Format string `yaml:"format"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Neon: NeonConfig{
			BaseURL:        "https://console.neon.tech/api/v2",
			OrgID:          os.Getenv(EnvOrgID),
			TimeoutSeconds: 30,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// no file exists at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.TypeConfig, "reading config file", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "parsing config file", err)
	}

	if cfg.Pricing != nil {
		if err := cfg.Pricing.Validate(); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "invalid pricing override", err)
		}
	}
	return cfg, nil
}

// APIKey resolves the Neon API key from the environment.
func APIKey() (string, error) {
	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return "", errors.Config(EnvAPIKey + " not set; create a key at https://console.neon.tech/app/settings/api-keys")
	}
	return key, nil
}

// Schedule returns the pricing schedule in effect: the config override
// when present, otherwise the Launch plan defaults.
func (c *Config) Schedule() pricing.Schedule {
	if c.Pricing != nil {
		return *c.Pricing
	}
	return pricing.LaunchPlan()
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.Neon.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Neon.TimeoutSeconds) * time.Second
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
