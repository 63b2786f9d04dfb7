package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/dumbshell/internal/application/usecase"
	"github.com/bnema/dumbshell/internal/domain/entity"
	"github.com/bnema/dumbshell/internal/infrastructure/config"
	"github.com/bnema/dumbshell/internal/infrastructure/metrics"
	"github.com/bnema/dumbshell/internal/infrastructure/webkit"
	"github.com/bnema/dumbshell/internal/logging"
	"github.com/bnema/dumbshell/internal/ui/bridge"
	"github.com/bnema/dumbshell/internal/ui/component"
	"github.com/bnema/dumbshell/internal/ui/controller"
	"github.com/bnema/dumbshell/internal/ui/dialog"
	"github.com/bnema/dumbshell/internal/ui/mainloop"
	"github.com/bnema/dumbshell/internal/ui/window"
	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/jwijenbergh/puregotk/v4/gtk"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.dumbshell"

	coalesceKeyURI   = "uri"
	coalesceKeyTitle = "title"
)

// App wraps the GTK Application and owns the shell's single session.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow

	session *entity.Session
	webView *webkit.WebView

	// Dialog pipeline: engine -> bridge -> poster -> machine -> popups
	machine *dialog.Machine
	bridge  *bridge.Bridge
	poster  *mainloop.GLibPoster
	popups  map[entity.InteractionKind]*component.ScriptDialogPopup

	coalescer  *mainloop.Coalescer
	addressBar *controller.AddressBar
	addressRow *component.AddressBar

	teardownOnce sync.Once
	cancel       context.CancelCauseFunc
}

// New creates an App with the given dependencies. No GTK call happens here.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if deps.Metrics == nil {
		deps.Metrics = port.NopMetrics{}
	}

	ctx, cancel := context.WithCancelCause(deps.Ctx)
	log := logging.FromContext(ctx)

	policy, err := dialog.ParsePolicy(string(deps.Config.Dialogs.SameKindPolicy))
	if err != nil {
		log.Warn().Err(err).Str("fallback", policy.String()).Msg("invalid dialog policy")
	}

	app := &App{
		deps:    deps,
		session: entity.NewSession(entity.NewSessionID(), deps.StartURL(), time.Now()),
		poster:  mainloop.NewGLibPoster(),
		popups:  make(map[entity.InteractionKind]*component.ScriptDialogPopup, len(entity.InteractionKinds)),
		cancel:  cancel,
	}

	logTransition := transitionLogger(ctx)
	app.machine = dialog.NewMachine(ctx, policy,
		dialog.WithMetrics(deps.Metrics),
		dialog.WithTransitionHook(func(t dialog.Transition) {
			logTransition(t)
			app.syncModal()
		}),
	)
	app.bridge = bridge.New(ctx, app.poster, app.machine, bridge.WithMetrics(deps.Metrics))
	app.coalescer = mainloop.NewCoalescer(app.poster)

	return app, nil
}

// Session returns the browsing session owned by this app.
func (a *App) Session() *entity.Session {
	return a.session
}

// DialogStatus reports the dialog machine's slots. Safe from any goroutine.
func (a *App) DialogStatus() []metrics.DialogStatus {
	return dialogStatus(a.machine)
}

func gtkApplicationFlags() gio.ApplicationFlags {
	// Several shells may run side by side.
	return gio.GApplicationNonUniqueValue
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(nil, gtkApplicationFlags())
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}
	defer a.gtkApp.Unref()

	activateCb := func(_ gio.Application) {
		a.onActivate(ctx)
	}
	a.gtkApp.ConnectActivate(&activateCb)

	shutdownCb := func(_ gio.Application) {
		a.onShutdown(ctx)
	}
	a.gtkApp.ConnectShutdown(&shutdownCb)

	log.Info().
		Str("session_id", a.session.ShortID()).
		Str("policy", a.machine.Policy().String()).
		Msg("starting GTK main loop")
	return a.gtkApp.Run(len(args), args)
}

// Quit asks the GTK main loop to stop. Safe from any goroutine.
func (a *App) Quit() {
	if a.gtkApp == nil {
		return
	}
	if !a.poster.Post(a.gtkApp.Quit) {
		a.gtkApp.Quit()
	}
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if err := a.createMainWindow(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		a.gtkApp.Quit()
		return
	}
	if err := a.createWebView(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create web view")
		a.gtkApp.Quit()
		return
	}
	if err := a.createAddressBar(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create address bar")
		a.gtkApp.Quit()
		return
	}
	if err := a.createDialogPopups(); err != nil {
		log.Error().Err(err).Msg("failed to create dialog popups")
		a.gtkApp.Quit()
		return
	}

	a.bridge.Register(a.webView)
	a.loadStartURL(ctx)
	a.finalizeActivation(ctx)
}

func (a *App) createMainWindow(ctx context.Context) error {
	mainWindow, err := window.New(ctx, a.gtkApp, a.deps.Config)
	if err != nil {
		return err
	}
	mainWindow.OnCloseRequest = func() { a.teardown(ctx) }
	a.mainWindow = mainWindow
	return nil
}

func (a *App) createWebView(ctx context.Context) error {
	wv, err := webkit.NewWebView(ctx, a.deps.WebContext, a.deps.Settings)
	if err != nil {
		return err
	}
	a.webView = wv
	return nil
}

func (a *App) createAddressBar(ctx context.Context) error {
	a.addressBar = controller.NewAddressBar(ctx, a.webView, a.deps.NavigateUC, a.session)
	a.addressBar.SetText(a.deps.StartURL())

	row, err := component.NewAddressBar(a.addressBar)
	if err != nil {
		return err
	}
	row.SetText(a.deps.StartURL())
	a.addressRow = row

	a.mainWindow.SetAddressRow(row.Widget())
	a.mainWindow.SetContent(&a.webView.Widget().Widget)

	// Engine notifications are coalesced so a redirect chain costs one update.
	a.webView.OnURIChanged = func(uri string) {
		a.coalescer.Post(coalesceKeyURI, func() { a.addressBar.OnURIChanged(uri) })
	}
	a.webView.OnTitleChanged = func(title string) {
		a.coalescer.Post(coalesceKeyTitle, func() { a.mainWindow.SetPageTitle(title) })
	}
	return nil
}

func (a *App) createDialogPopups() error {
	for _, kind := range entity.InteractionKinds {
		popup, err := component.NewScriptDialogPopup(a.mainWindow.ModalHost())
		if err != nil {
			return err
		}
		a.mainWindow.AddOverlay(popup.Widget())
		popup.AttachEscape(a.mainWindow.KeyTarget())
		a.popups[kind] = popup
		a.machine.SetRenderer(kind, popup)
	}
	return nil
}

func (a *App) loadStartURL(ctx context.Context) {
	startURL := a.deps.StartURL()
	err := a.deps.NavigateUC.Execute(ctx, usecase.NavigateInput{URL: startURL, Engine: a.webView})
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("url", startURL).Msg("failed to load start URL")
	}
}

func (a *App) finalizeActivation(ctx context.Context) {
	log := logging.FromContext(ctx)

	a.mainWindow.Show()
	a.addressRow.GrabFocus()
	log.Info().Msg("main window displayed")

	if a.deps.Config.Debug.OpenDevTools {
		if err := a.webView.ShowDevTools(); err != nil {
			log.Warn().Err(err).Msg("failed to open devtools")
		}
	}

	a.initConfigWatcher(ctx)
}

func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.deps.ConfigManager == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}

	if err := a.deps.ConfigManager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}

	// The dialog policy and web settings are hot-reloaded; the rest needs a restart.
	a.deps.ConfigManager.OnConfigChange(func(newCfg *config.Config) {
		a.poster.Post(func() { a.applyConfig(ctx, newCfg) })
	})

	log.Debug().Msg("config watcher initialized")
}

func (a *App) applyConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}
	policy, err := dialog.ParsePolicy(string(cfg.Dialogs.SameKindPolicy))
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("ignoring invalid dialog policy")
	} else {
		a.machine.SetPolicy(policy)
	}

	if a.deps.Settings != nil && a.webView != nil && !a.webView.IsDestroyed() {
		a.deps.Settings.UpdateFromConfig(ctx, cfg)
		a.deps.Settings.ApplyToWebView(ctx, a.webView.Widget())
	}
}

// teardown answers every open dialog and releases the engine. It runs on
// window close or application shutdown, whichever comes first.
func (a *App) teardown(ctx context.Context) {
	a.teardownOnce.Do(func() {
		log := logging.FromContext(ctx)

		// Dismiss first so suspended page scripts get their answer.
		a.machine.Close()
		a.bridge.Unregister()
		a.coalescer.Destroy()
		a.poster.Close()

		if a.webView != nil {
			a.webView.Destroy()
		}
		a.session.End(time.Now())

		log.Info().
			Str("session_id", a.session.ShortID()).
			Str("last_url", logging.TruncateURL(a.session.CurrentURL(), 80)).
			Msg("session ended")
	})
}

func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	a.teardown(ctx)
	a.cancel(errors.New("application shutdown"))

	if a.deps.WebContext != nil {
		if err := a.deps.WebContext.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close webkit context")
		}
	}

	log.Info().Msg("application shutdown complete")
}

// syncModal blocks the window while any dialog is visible and hands focus
// back to the address row once the last one goes away.
func (a *App) syncModal() {
	if a.mainWindow == nil {
		return
	}
	changed := a.mainWindow.SetModal(anyDialogVisible(a.machine))
	if changed && !a.mainWindow.IsModal() && a.addressRow != nil {
		a.addressRow.GrabFocus()
	}
}

func anyDialogVisible(m *dialog.Machine) bool {
	for _, kind := range entity.InteractionKinds {
		if m.State(kind).Visible {
			return true
		}
	}
	return false
}

// transitionLogger logs every dialog visibility change at debug level.
func transitionLogger(ctx context.Context) func(dialog.Transition) {
	log := logging.FromContext(ctx).With().Str("component", "dialog-transitions").Logger()
	return func(t dialog.Transition) {
		ev := log.Debug().
			Str("interaction_id", t.InteractionID).
			Str("interaction_kind", t.Kind.String()).
			Bool("visible", t.Visible)
		if !t.Visible {
			if t.Superseded {
				ev = ev.Bool("superseded", true)
			} else {
				ev = ev.Str("resolution", t.Resolution.String())
			}
		}
		ev.Msg("dialog transition")
	}
}

// dialogStatus snapshots every slot of m for the debug endpoint.
func dialogStatus(m *dialog.Machine) []metrics.DialogStatus {
	out := make([]metrics.DialogStatus, 0, len(entity.InteractionKinds))
	for _, kind := range entity.InteractionKinds {
		state := m.State(kind)
		status := metrics.DialogStatus{
			Kind:    kind.String(),
			Visible: state.Visible,
			Queued:  m.Pending(kind),
		}
		if state.Visible {
			status.InteractionID = state.Interaction.ID
			status.Title = state.Interaction.Title
			status.Message = state.Interaction.Message
		}
		out = append(out, status)
	}
	return out
}
