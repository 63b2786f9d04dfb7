package webkit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/dumbshell/internal/logging"
	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/jwijenbergh/puregotk/v4/gobject"
	"github.com/rs/zerolog"
)

// ErrWebViewDestroyed is returned by operations on a destroyed WebView.
var ErrWebViewDestroyed = errors.New("webview is destroyed")

// LoadEvent represents WebKit load events.
type LoadEvent int

const (
	LoadStarted    LoadEvent = LoadEvent(webkit.LoadStartedValue)
	LoadRedirected LoadEvent = LoadEvent(webkit.LoadRedirectedValue)
	LoadCommitted  LoadEvent = LoadEvent(webkit.LoadCommittedValue)
	LoadFinished   LoadEvent = LoadEvent(webkit.LoadFinishedValue)
)

// WebView wraps webkit.WebView and implements port.Engine.
type WebView struct {
	inner *webkit.WebView

	destroyed atomic.Bool
	uri       string
	title     string
	mu        sync.RWMutex

	dialogs scriptDialogHandlers

	// Callbacks (set by UI layer, invoked on the GTK main thread)
	OnLoadChanged  func(LoadEvent)
	OnURIChanged   func(string)
	OnTitleChanged func(string)

	logger zerolog.Logger
}

var _ port.Engine = (*WebView)(nil)

// NewWebView creates a WebView bound to the context's network session.
func NewWebView(ctx context.Context, wkCtx *WebKitContext, settings *SettingsManager) (*WebView, error) {
	if wkCtx == nil || !wkCtx.IsInitialized() {
		return nil, fmt.Errorf("webkit context not initialized")
	}

	inner := webkit.NewWebView()
	if inner == nil {
		return nil, fmt.Errorf("failed to create webkit webview")
	}

	wv := &WebView{
		inner:  inner,
		logger: logging.FromContext(ctx).With().Str("component", "webview").Logger(),
	}

	if settings != nil {
		settings.ApplyToWebView(ctx, inner)
	}

	wv.connectSignals()

	wv.logger.Debug().Msg("webview created")
	return wv, nil
}

// connectSignals sets up signal handlers for the WebView.
func (wv *WebView) connectSignals() {
	loadChangedCb := func(inner webkit.WebView, event webkit.LoadEvent) {
		if wv.destroyed.Load() {
			return
		}
		uri := inner.GetUri()
		title := inner.GetTitle()

		wv.mu.Lock()
		uriChanged := uri != wv.uri
		titleChanged := title != wv.title
		wv.uri = uri
		wv.title = title
		wv.mu.Unlock()

		if wv.OnLoadChanged != nil {
			wv.OnLoadChanged(LoadEvent(event))
		}
		if uriChanged && wv.OnURIChanged != nil {
			wv.OnURIChanged(uri)
		}
		if titleChanged && wv.OnTitleChanged != nil {
			wv.OnTitleChanged(title)
		}
	}
	wv.inner.ConnectLoadChanged(&loadChangedCb)

	titleCb := func(_ gobject.Object, _ uintptr) {
		if wv.destroyed.Load() {
			return
		}
		title := wv.inner.GetTitle()
		wv.mu.Lock()
		changed := title != wv.title
		wv.title = title
		wv.mu.Unlock()
		if changed && wv.OnTitleChanged != nil {
			wv.OnTitleChanged(title)
		}
	}
	wv.inner.ConnectNotifyWithDetail("title", &titleCb)

	scriptDialogCb := func(inner webkit.WebView, dialogPtr uintptr) bool {
		if wv.destroyed.Load() {
			return false
		}
		dialog := webkit.ScriptDialogFromPointer(dialogPtr)
		if dialog == nil {
			return false
		}
		kind := ScriptDialogKind(dialog.GetDialogType())
		title := dialogTitle(inner.GetUri(), inner.GetTitle())
		message := dialog.GetMessage()

		handled := wv.dialogs.dispatch(kind, title, message, func() scriptDialogHandle {
			return newNativeDialogHandle(dialog)
		})

		wv.logger.Debug().
			Int("dialog_type", int(kind)).
			Bool("handled", handled).
			Msg("script dialog")
		return handled
	}
	wv.inner.ConnectScriptDialog(&scriptDialogCb)
}

// Widget returns the underlying webkit.WebView for GTK embedding.
func (wv *WebView) Widget() *webkit.WebView {
	return wv.inner
}

// Navigate loads url as given.
func (wv *WebView) Navigate(ctx context.Context, url string) error {
	if wv.destroyed.Load() {
		return ErrWebViewDestroyed
	}
	wv.inner.LoadUri(url)
	logging.FromContext(ctx).Debug().Str("uri", logging.TruncateURL(url, 80)).Msg("loading URI")
	return nil
}

// SetAlertHandler implements port.Engine.
func (wv *WebView) SetAlertHandler(handler port.AlertHandler) {
	wv.dialogs.setAlert(handler)
}

// SetConfirmHandler implements port.Engine.
func (wv *WebView) SetConfirmHandler(handler port.ConfirmHandler) {
	wv.dialogs.setConfirm(handler)
}

// URI returns the current URI.
func (wv *WebView) URI() string {
	wv.mu.RLock()
	defer wv.mu.RUnlock()
	return wv.uri
}

// Title returns the current page title.
func (wv *WebView) Title() string {
	wv.mu.RLock()
	defer wv.mu.RUnlock()
	return wv.title
}

// ShowDevTools opens the WebKit inspector.
func (wv *WebView) ShowDevTools() error {
	if wv.destroyed.Load() {
		return ErrWebViewDestroyed
	}
	inspector := wv.inner.GetInspector()
	if inspector == nil {
		return fmt.Errorf("failed to get inspector")
	}
	inspector.Show()
	wv.logger.Debug().Msg("devtools shown")
	return nil
}

// IsDestroyed returns true if the WebView has been destroyed.
func (wv *WebView) IsDestroyed() bool {
	return wv.destroyed.Load()
}

// Destroy drops the dialog handlers and UI hooks. The signal handlers stay
// connected for the widget's lifetime and return early once destroyed, so a
// late script dialog falls back to WebKit's default.
func (wv *WebView) Destroy() {
	if wv.destroyed.Swap(true) {
		return
	}

	wv.dialogs.setAlert(nil)
	wv.dialogs.setConfirm(nil)

	wv.OnLoadChanged = nil
	wv.OnURIChanged = nil
	wv.OnTitleChanged = nil

	wv.logger.Debug().Msg("webview destroyed")
}
