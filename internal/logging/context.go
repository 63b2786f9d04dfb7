package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithURL creates a child logger with a url field
func WithURL(ctx context.Context, url string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("url", url).Logger()
	return WithContext(ctx, childLogger)
}

// WithInteraction creates a child logger tagged with a script dialog's id and kind.
func WithInteraction(ctx context.Context, id, kind string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().
		Str("interaction_id", id).
		Str("interaction_kind", kind).
		Logger()
	return WithContext(ctx, childLogger)
}

// TruncateURL shortens url to at most maxLen runes for log output.
func TruncateURL(url string, maxLen int) string {
	runes := []rune(url)
	if maxLen <= 0 || len(runes) <= maxLen {
		return url
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
