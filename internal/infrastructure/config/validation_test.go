package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shell.StartURL = ""
	cfg.Shell.WindowHeight = 0
	cfg.Logging.Format = "xml"
	cfg.Debug.MetricsAddr = "9090"

	err := validateConfig(cfg)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "config validation failed:")
	assert.Contains(t, msg, "shell.start_url")
	assert.Contains(t, msg, "shell.window_height")
	assert.Contains(t, msg, "logging.format")
	assert.Contains(t, msg, "debug.metrics_addr")
}

func TestValidateConfig_FileLogNeedsSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.EnableFileLog = true
	cfg.Logging.MaxSizeMB = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.max_size_mb")
}

func TestValidateConfig_MetricsAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug.MetricsAddr = "127.0.0.1:9091"
	assert.NoError(t, validateConfig(cfg))

	cfg.Debug.MetricsAddr = ":9091"
	assert.NoError(t, validateConfig(cfg))
}
