// Package ui provides the GTK4 presentation layer for dumbshell.
package ui

import (
	"context"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/dumbshell/internal/application/usecase"
	"github.com/bnema/dumbshell/internal/infrastructure/config"
	"github.com/bnema/dumbshell/internal/infrastructure/webkit"
)

// Dependencies holds everything the UI layer is built from.
// It is created once at startup.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config

	// ConfigManager enables hot reload of the dialog policy (optional).
	ConfigManager *config.Manager

	// InitialURL overrides shell.start_url (optional).
	InitialURL string

	// WebKit infrastructure
	WebContext *webkit.WebKitContext
	Settings   *webkit.SettingsManager

	NavigateUC *usecase.NavigateUseCase

	// Metrics defaults to port.NopMetrics.
	Metrics port.MetricsRecorder
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.NavigateUC == nil {
		return ErrMissingDependency("NavigateUC")
	}
	// WebContext may be nil in tests; activation then fails to create the view.
	return nil
}

// StartURL returns the page loaded when the window opens.
func (d *Dependencies) StartURL() string {
	if d.InitialURL != "" {
		return d.InitialURL
	}
	return d.Config.Shell.StartURL
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
