package config

import (
	"errors"
	"strings"
)

// EnvAPIKey is the environment variable holding the OpenRouter credential
const EnvAPIKey = "OPENROUTER_API_KEY"

// DefaultEnvFile is the dotenv file read from the working directory when no other is given
const DefaultEnvFile = ".env"

// flag names read by ApplyFlags
const (
	FlagDebug       = "debug"
	FlagVerbose     = "verbose"
	FlagFailOnError = "fail-on-error"
)

// ErrMissingAPIKey is returned when no credential could be resolved
var ErrMissingAPIKey = errors.New(EnvAPIKey + " not found in environment variables")

// Config represents the resolved runtime configuration for orcall
type Config struct {
	APIKey string `mapstructure:"openrouter_api_key"`

	// application behavior; set from command-line flags only, never from the env file
	Debug       bool `mapstructure:"-"`
	Verbose     bool `mapstructure:"-"`
	FailOnError bool `mapstructure:"-"`
}

// Validate checks that a credential is present
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// MaskKey renders an API key for display without revealing it
func MaskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + "…" + key[len(key)-4:]
}
