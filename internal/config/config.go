package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// apiKeyKey is the viper key for the credential; dotenv keys are lowercased by viper
const apiKeyKey = "openrouter_api_key"

// Manager handles configuration loading from a dotenv file and the environment
type Manager struct {
	v       *viper.Viper
	cfg     *Config
	logger  *slog.Logger
	envFile string
}

// NewManager creates a new configuration manager
// the process environment always takes precedence over the dotenv file,
// including a variable that is set but empty
func NewManager() *Manager {
	v := viper.New()
	v.AllowEmptyEnv(true)
	_ = v.BindEnv(apiKeyKey, EnvAPIKey)

	return &Manager{
		v:   v,
		cfg: &Config{},
	}
}

// WithLogger sets the logger for the configuration manager
func (m *Manager) WithLogger(logger *slog.Logger) *Manager {
	m.logger = logger
	return m
}

// Load reads the optional dotenv file at envFile and resolves the configuration
// a missing file is not an error; an unreadable or malformed one is
func (m *Manager) Load(envFile string) error {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	if m.logger != nil {
		m.logger.Debug("Attempting to load env file", "path", envFile)
	}

	m.v.SetConfigType("env")
	m.v.SetConfigFile(envFile)

	err := m.v.ReadInConfig()
	switch {
	case err == nil:
		m.envFile = m.v.ConfigFileUsed()
		if m.logger != nil {
			m.logger.Info("Env file loaded", "path", m.envFile)
		}
	case isNotExist(err):
		if m.logger != nil {
			m.logger.Debug("Env file not found, using process environment only", "path", envFile)
		}
	default:
		return fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}

	if err := m.v.Unmarshal(m.cfg); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}

	if m.logger != nil {
		m.logger.Debug("Configuration resolved",
			"api_key", MaskKey(m.cfg.APIKey),
			"from_env", os.Getenv(EnvAPIKey) != "")
	}

	return nil
}

// ApplyFlags copies the behavior switches from flags into the configuration
// flags not defined in the set are left at false
func (m *Manager) ApplyFlags(flags *pflag.FlagSet) error {
	targets := map[string]*bool{
		FlagDebug:       &m.cfg.Debug,
		FlagVerbose:     &m.cfg.Verbose,
		FlagFailOnError: &m.cfg.FailOnError,
	}

	for name, target := range targets {
		if flags.Lookup(name) == nil {
			continue
		}
		value, err := flags.GetBool(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*target = value
	}

	return nil
}

// Config returns the current configuration
func (m *Manager) Config() *Config {
	return m.cfg
}

// Viper returns the underlying Viper instance for flag binding
func (m *Manager) Viper() *viper.Viper {
	return m.v
}

// EnvFileUsed returns the dotenv file that was read, or "" if none was
func (m *Manager) EnvFileUsed() string {
	return m.envFile
}

// SaveAPIKey writes the credential into the dotenv file at path
// other keys already in the file are preserved
func (m *Manager) SaveAPIKey(path, apiKey string) error {
	if path == "" {
		path = DefaultEnvFile
	}

	fileV := viper.New()
	fileV.SetConfigType("env")
	fileV.SetConfigFile(path)
	if err := fileV.ReadInConfig(); err != nil && !isNotExist(err) {
		var parseErr viper.ConfigParseError
		if !errors.As(err, &parseErr) {
			return fmt.Errorf("failed to read existing env file: %w", err)
		}

		// an unparseable file is replaced rather than merged
		if m.logger != nil {
			m.logger.Warn("Replacing unparseable env file", "path", path, "error", err)
		}
		fileV = viper.New()
		fileV.SetConfigType("env")
	}

	fileV.Set(apiKeyKey, apiKey)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create env file directory: %w", err)
		}
	}

	if err := fileV.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}

	// the file holds a secret
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to restrict env file permissions: %w", err)
	}

	if m.logger != nil {
		m.logger.Info("Saved API key", "path", path)
	}

	return nil
}

// isNotExist reports whether err means the config file is absent
func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
