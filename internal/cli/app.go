// Package cli holds the state shared by dumbshell's non-GUI commands.
package cli

import (
	"github.com/bnema/dumbshell/internal/cli/styles"
	"github.com/bnema/dumbshell/internal/domain/build"
	"github.com/bnema/dumbshell/internal/infrastructure/config"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info

	// LoadErr is set when the config file could not be loaded; Config then
	// holds the defaults so commands like "config reset" still work.
	LoadErr error
}

// NewApp loads the configuration and builds the CLI theme.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	app := &App{
		ConfigFile: mgr.GetConfigFile(),
		Theme:      styles.NewTheme(),
	}
	if err := mgr.Load(); err != nil {
		app.LoadErr = err
	}
	app.Config = mgr.Get()
	return app, nil
}

// Close releases resources held by the app.
func (*App) Close() error {
	return nil
}
