// Package config loads dumbshell's TOML configuration through viper and
// keeps it current while the shell runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// Environment overrides use the DUMBSHELL_ prefix with dots turned into
	// underscores, e.g. DUMBSHELL_SHELL_START_URL.
	v.SetEnvPrefix("DUMBSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DUMBSHELL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBSHELL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBSHELL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBSHELL_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from DefaultConfig.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			filepath.Dir(m.configFile),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, normalizes and validates the values viper currently holds.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}

	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch DialogPolicy(strings.ToLower(strings.TrimSpace(string(config.Dialogs.SameKindPolicy)))) {
	case DialogPolicySupersede:
		config.Dialogs.SameKindPolicy = DialogPolicySupersede
	default:
		config.Dialogs.SameKindPolicy = DialogPolicyQueue
	}

	switch CookiePolicy(strings.ToLower(strings.TrimSpace(string(config.Privacy.CookiePolicy)))) {
	case CookiePolicyAlways:
		config.Privacy.CookiePolicy = CookiePolicyAlways
	case CookiePolicyNever:
		config.Privacy.CookiePolicy = CookiePolicyNever
	default:
		config.Privacy.CookiePolicy = CookiePolicyNoThirdParty
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Shell.StartURL = strings.TrimSpace(config.Shell.StartURL)
	config.Debug.MetricsAddr = strings.TrimSpace(config.Debug.MetricsAddr)
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

func (m *Manager) createDefaultConfig() error {
	if err := WriteConfig(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", m.configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("shell.start_url", defaults.Shell.StartURL)
	m.viper.SetDefault("shell.window_title", defaults.Shell.WindowTitle)
	m.viper.SetDefault("shell.window_width", defaults.Shell.WindowWidth)
	m.viper.SetDefault("shell.window_height", defaults.Shell.WindowHeight)

	m.viper.SetDefault("dialogs.same_kind_policy", string(defaults.Dialogs.SameKindPolicy))

	m.viper.SetDefault("privacy.cookie_policy", string(defaults.Privacy.CookiePolicy))

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("debug.open_devtools", defaults.Debug.OpenDevTools)
	m.viper.SetDefault("debug.metrics_addr", defaults.Debug.MetricsAddr)
}
