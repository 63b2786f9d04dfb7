package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/bnema/dumbshell/internal/logging"
)

// validateConfig collects every invalid value into a single error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateShell(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDebug(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateShell(config *Config) []string {
	var validationErrors []string
	if config.Shell.StartURL == "" {
		validationErrors = append(validationErrors, "shell.start_url must not be empty")
	}
	if config.Shell.WindowWidth < minWindowDimension {
		validationErrors = append(validationErrors,
			fmt.Sprintf("shell.window_width must be at least %d", minWindowDimension))
	}
	if config.Shell.WindowHeight < minWindowDimension {
		validationErrors = append(validationErrors,
			fmt.Sprintf("shell.window_height must be at least %d", minWindowDimension))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON, "text":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB <= 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive when file logging is enabled")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateDebug(config *Config) []string {
	if config.Debug.MetricsAddr == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(config.Debug.MetricsAddr); err != nil {
		return []string{fmt.Sprintf("debug.metrics_addr must be host:port (got %q)", config.Debug.MetricsAddr)}
	}
	return nil
}
