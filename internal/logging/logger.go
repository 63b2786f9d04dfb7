package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats understood by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string

	// Output defaults to stderr.
	Output io.Writer

	// FileWriter, when set, receives every event as JSON in addition to Output.
	FileWriter io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == FormatConsole {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	if cfg.FileWriter != nil {
		output = zerolog.MultiLevelWriter(output, cfg.FileWriter)
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config level name to a zerolog level.
// An empty name is treated as info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "fatal":
		return zerolog.FatalLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// NewFromConfigValues builds a logger from the raw level and format strings
// found in the config file. Unknown values fall back to the defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	return New(ConfigFromValues(level, format))
}

// ConfigFromValues converts raw level and format strings into a Config.
func ConfigFromValues(level, format string) Config {
	cfg := DefaultConfig()

	if lvl, err := ParseLevel(level); err == nil {
		cfg.Level = lvl
	}

	switch strings.ToLower(format) {
	case FormatJSON, FormatConsole:
		cfg.Format = strings.ToLower(format)
	}

	return cfg
}

// NewFromEnv creates a logger based on environment variables
// DUMBSHELL_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DUMBSHELL_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DUMBSHELL_LOG_LEVEL"), os.Getenv("DUMBSHELL_LOG_FORMAT"))
}
