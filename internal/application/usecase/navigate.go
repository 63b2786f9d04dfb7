package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/dumbshell/internal/logging"
)

// logURLMaxLen is the max length for URLs in log messages.
const logURLMaxLen = 60

// Navigation outcomes reported to the metrics recorder.
const (
	NavigationOutcomeRequested = "requested"
	NavigationOutcomeFailed    = "failed"
)

// ErrNoEngine is returned when a navigation is requested without an engine.
var ErrNoEngine = errors.New("no engine available")

// NavigateUseCase hands the address text to the engine.
// The URL is forwarded as typed: scheme inference and validation belong to the engine.
type NavigateUseCase struct {
	metrics port.MetricsRecorder
}

// NewNavigateUseCase creates a new navigation use case.
// A nil recorder disables navigation metrics.
func NewNavigateUseCase(metrics port.MetricsRecorder) *NavigateUseCase {
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	return &NavigateUseCase{metrics: metrics}
}

// NavigateInput contains parameters for navigation.
type NavigateInput struct {
	URL    string
	Engine port.Engine
}

// Execute asks the engine to load input.URL.
func (uc *NavigateUseCase) Execute(ctx context.Context, input NavigateInput) error {
	log := logging.FromContext(ctx)

	if input.Engine == nil {
		uc.metrics.NavigationRequested(NavigationOutcomeFailed)
		return ErrNoEngine
	}

	log.Debug().
		Str("url", logging.TruncateURL(input.URL, logURLMaxLen)).
		Msg("navigating to URL")

	if err := input.Engine.Navigate(ctx, input.URL); err != nil {
		uc.metrics.NavigationRequested(NavigationOutcomeFailed)
		return fmt.Errorf("failed to load URL: %w", err)
	}

	uc.metrics.NavigationRequested(NavigationOutcomeRequested)
	log.Info().
		Str("url", logging.TruncateURL(input.URL, logURLMaxLen)).
		Msg("navigation initiated")

	return nil
}
