package webkit

import (
	"net/url"
	"sync"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/puregotk-webkit/webkit"
)

// ScriptDialogKind mirrors WebKitScriptDialogType.
type ScriptDialogKind int

const (
	ScriptDialogAlert        ScriptDialogKind = ScriptDialogKind(webkit.ScriptDialogAlertValue)
	ScriptDialogConfirm      ScriptDialogKind = ScriptDialogKind(webkit.ScriptDialogConfirmValue)
	ScriptDialogPrompt       ScriptDialogKind = ScriptDialogKind(webkit.ScriptDialogPromptValue)
	ScriptDialogBeforeUnload ScriptDialogKind = ScriptDialogKind(webkit.ScriptDialogBeforeUnloadConfirmValue)
)

// scriptDialogHandle is the part of a WebKitScriptDialog the reply needs.
type scriptDialogHandle interface {
	SetConfirmed(confirmed bool)
	Close()
}

// nativeDialogHandle keeps a ref on the dialog until the reply is sent.
type nativeDialogHandle struct {
	dialog *webkit.ScriptDialog
}

func newNativeDialogHandle(dialog *webkit.ScriptDialog) *nativeDialogHandle {
	dialog.Ref()
	return &nativeDialogHandle{dialog: dialog}
}

func (h *nativeDialogHandle) SetConfirmed(confirmed bool) {
	h.dialog.ConfirmSetConfirmed(confirmed)
}

func (h *nativeDialogHandle) Close() {
	h.dialog.Close()
	h.dialog.Unref()
}

// dialogReply answers a suspended script dialog exactly once.
// It satisfies both port.AlertReply and port.ConfirmReply.
type dialogReply struct {
	handle  scriptDialogHandle
	confirm bool
	once    sync.Once
}

func (r *dialogReply) Ok() {
	r.finish(true)
}

func (r *dialogReply) Cancel() {
	r.finish(false)
}

func (r *dialogReply) finish(confirmed bool) {
	r.once.Do(func() {
		if r.confirm {
			r.handle.SetConfirmed(confirmed)
		}
		r.handle.Close()
	})
}

// scriptDialogHandlers is the handler pair a WebView forwards dialogs to.
type scriptDialogHandlers struct {
	mu      sync.RWMutex
	alert   port.AlertHandler
	confirm port.ConfirmHandler
}

func (h *scriptDialogHandlers) setAlert(fn port.AlertHandler) {
	h.mu.Lock()
	h.alert = fn
	h.mu.Unlock()
}

func (h *scriptDialogHandlers) setConfirm(fn port.ConfirmHandler) {
	h.mu.Lock()
	h.confirm = fn
	h.mu.Unlock()
}

// dispatch hands the dialog to the matching handler. It reports false when
// nothing claimed the dialog, in which case WebKit shows its default UI and
// handle must not be used.
func (h *scriptDialogHandlers) dispatch(
	kind ScriptDialogKind,
	title, message string,
	acquire func() scriptDialogHandle,
) bool {
	h.mu.RLock()
	alert, confirm := h.alert, h.confirm
	h.mu.RUnlock()

	switch kind {
	case ScriptDialogAlert:
		if alert == nil {
			return false
		}
		alert(title, message, &dialogReply{handle: acquire()})
		return true
	case ScriptDialogConfirm:
		if confirm == nil {
			return false
		}
		confirm(title, message, &dialogReply{handle: acquire(), confirm: true})
		return true
	default:
		return false
	}
}

// dialogTitle names the page that raised a dialog: its host, else the page
// title, else the raw URI.
func dialogTitle(uri, pageTitle string) string {
	if u, err := url.Parse(uri); err == nil && u.Host != "" {
		return u.Host
	}
	if pageTitle != "" {
		return pageTitle
	}
	return uri
}
