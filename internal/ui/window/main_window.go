// Package window provides the shell's GTK window.
package window

import (
	"context"

	"github.com/bnema/dumbshell/internal/infrastructure/config"
	"github.com/bnema/dumbshell/internal/logging"
	"github.com/jwijenbergh/puregotk/v4/gtk"
	"github.com/rs/zerolog"
)

// maxTitleLen caps the window title shown by the compositor.
const maxTitleLen = 255

// MainWindow is the single shell window: an overlay whose main child is the
// address row above the web view, with the dialog popups stacked on top.
type MainWindow struct {
	window        *gtk.ApplicationWindow
	windowOverlay *gtk.Overlay // rootBox + dialog popups
	rootBox       *gtk.Box     // Vertical: address row + content
	contentArea   *gtk.Box

	modal bool

	baseTitle string
	logger    zerolog.Logger

	// OnCloseRequest runs when the user closes the window, before it goes away.
	OnCloseRequest func()

	retainedCallbacks []interface{}
}

// New creates the main window from the shell settings.
func New(ctx context.Context, app *gtk.Application, cfg *config.Config) (*MainWindow, error) {
	log := logging.FromContext(ctx)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	mw := &MainWindow{
		baseTitle: cfg.Shell.WindowTitle,
		logger:    log.With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}

	title := mw.baseTitle
	mw.window.SetTitle(&title)
	mw.window.SetDefaultSize(cfg.Shell.WindowWidth, cfg.Shell.WindowHeight)

	mw.rootBox = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if mw.rootBox == nil {
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("rootBox")
	}
	mw.rootBox.SetHexpand(true)
	mw.rootBox.SetVexpand(true)

	mw.windowOverlay = gtk.NewOverlay()
	if mw.windowOverlay == nil {
		mw.rootBox.Unref()
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("windowOverlay")
	}
	mw.windowOverlay.SetHexpand(true)
	mw.windowOverlay.SetVexpand(true)

	mw.contentArea = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if mw.contentArea == nil {
		mw.windowOverlay.Unref()
		mw.rootBox.Unref()
		mw.window.Unref()
		return nil, ErrWidgetCreationFailed("contentArea")
	}
	mw.contentArea.SetHexpand(true)
	mw.contentArea.SetVexpand(true)
	mw.contentArea.AddCssClass("content-area")

	mw.windowOverlay.SetChild(&mw.rootBox.Widget)
	mw.window.SetChild(&mw.windowOverlay.Widget)

	closeRequestCb := func(_ gtk.Window) bool {
		if mw.OnCloseRequest != nil {
			mw.OnCloseRequest()
		}
		return false
	}
	mw.retainedCallbacks = append(mw.retainedCallbacks, closeRequestCb)
	mw.window.ConnectCloseRequest(&closeRequestCb)

	mw.logger.Debug().
		Int("width", cfg.Shell.WindowWidth).
		Int("height", cfg.Shell.WindowHeight).
		Msg("main window created")

	return mw, nil
}

// SetAddressRow packs the address row above the content. Call once.
func (mw *MainWindow) SetAddressRow(widget *gtk.Widget) {
	if widget != nil {
		mw.rootBox.Append(widget)
	}
	mw.rootBox.Append(&mw.contentArea.Widget)
}

// SetContent puts the engine's widget in the content area.
func (mw *MainWindow) SetContent(widget *gtk.Widget) {
	if widget == nil {
		return
	}
	widget.SetHexpand(true)
	widget.SetVexpand(true)
	mw.contentArea.Append(widget)
}

// AddOverlay stacks widget above the address row and the content.
func (mw *MainWindow) AddOverlay(widget *gtk.Widget) {
	if mw.windowOverlay != nil && widget != nil {
		mw.windowOverlay.AddOverlay(widget)
	}
}

// ModalHost returns the overlay popups cover and are sized against.
func (mw *MainWindow) ModalHost() *gtk.Overlay {
	return mw.windowOverlay
}

// KeyTarget returns the widget that sees every key press in the window.
func (mw *MainWindow) KeyTarget() *gtk.Widget {
	if mw.window == nil {
		return nil
	}
	return &mw.window.Widget
}

// SetModal keeps keyboard focus out of the address row and the page while
// a dialog is up. It reports whether the state changed.
func (mw *MainWindow) SetModal(modal bool) bool {
	if mw.modal == modal {
		return false
	}
	mw.modal = modal
	if mw.rootBox != nil {
		mw.rootBox.SetCanFocus(!modal)
	}
	return true
}

// IsModal reports whether a dialog currently owns the window.
func (mw *MainWindow) IsModal() bool {
	return mw.modal
}

// Show makes the window visible.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// Close closes the window.
func (mw *MainWindow) Close() {
	mw.window.Close()
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}

// SetPageTitle shows the page title after the configured window title.
func (mw *MainWindow) SetPageTitle(pageTitle string) {
	if mw.window == nil {
		return
	}
	title := FormatTitle(mw.baseTitle, pageTitle)
	mw.window.SetTitle(&title)
}

// FormatTitle joins the page title and the base title, capped for display.
func FormatTitle(base, pageTitle string) string {
	title := base
	if pageTitle != "" {
		title = pageTitle + " - " + base
	}
	runes := []rune(title)
	if len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen-3]) + "..."
	}
	return title
}

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// Error constants.
var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}
