package webkit

import (
	"context"
	"sync"

	"github.com/bnema/dumbshell/internal/infrastructure/config"
	"github.com/bnema/dumbshell/internal/logging"
	"github.com/bnema/puregotk-webkit/webkit"
)

// SettingsManager applies config to webkit.Settings instances.
type SettingsManager struct {
	cfg *config.Config
	mu  sync.RWMutex
}

// NewSettingsManager creates a new SettingsManager with the given config.
func NewSettingsManager(ctx context.Context, cfg *config.Config) *SettingsManager {
	logging.FromContext(ctx).Debug().Msg("creating settings manager")
	return &SettingsManager{cfg: cfg}
}

// UpdateFromConfig swaps the config used for subsequent applies.
func (sm *SettingsManager) UpdateFromConfig(ctx context.Context, cfg *config.Config) {
	sm.mu.Lock()
	sm.cfg = cfg
	sm.mu.Unlock()
	logging.FromContext(ctx).Debug().Msg("settings config updated")
}

// ApplyToWebView applies the current config to the WebView's own settings.
func (sm *SettingsManager) ApplyToWebView(ctx context.Context, wv *webkit.WebView) {
	if wv == nil {
		return
	}
	settings := wv.GetSettings()
	if settings == nil {
		logging.FromContext(ctx).Error().Msg("webview has no settings")
		return
	}

	sm.mu.RLock()
	cfg := sm.cfg
	sm.mu.RUnlock()

	applySettings(settings, cfg)

	logging.FromContext(ctx).Debug().
		Bool("developer_extras", developerExtras(cfg)).
		Msg("settings applied")
}

func applySettings(settings *webkit.Settings, cfg *config.Config) {
	// Dialogs are raised from page scripts, so JavaScript stays on.
	settings.SetEnableJavascript(true)
	settings.SetEnableJavascriptMarkup(true)
	settings.SetEnableDeveloperExtras(developerExtras(cfg))
	settings.SetEnableSmoothScrolling(true)
	settings.SetEnablePageCache(true)
	settings.SetEnableHtml5LocalStorage(true)
}

func developerExtras(cfg *config.Config) bool {
	return cfg != nil && cfg.Debug.OpenDevTools
}
