// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"
)

// AlertReply resumes the engine after an alert dialog.
type AlertReply interface {
	Ok()
}

// ConfirmReply resumes the engine after a confirm dialog.
type ConfirmReply interface {
	Ok()
	Cancel()
}

// AlertHandler receives window.alert() requests from the engine.
// It may be invoked outside the UI thread and must return without waiting
// for the user; the engine stays suspended until reply is invoked.
type AlertHandler func(title, message string, reply AlertReply)

// ConfirmHandler receives window.confirm() requests from the engine.
// Same threading contract as AlertHandler.
type ConfirmHandler func(title, message string, reply ConfirmReply)

// Engine is the handle to the embedded rendering engine and the single
// browsing session it owns. Navigation failures are reported by the engine
// itself (error pages), not through Navigate.
type Engine interface {
	// Navigate loads url as given. No validation happens on this side.
	Navigate(ctx context.Context, url string) error

	// SetAlertHandler registers the alert handler, replacing any previous one.
	// Pass nil to restore the engine's default behavior.
	SetAlertHandler(handler AlertHandler)

	// SetConfirmHandler registers the confirm handler, replacing any previous one.
	// Pass nil to restore the engine's default behavior.
	SetConfirmHandler(handler ConfirmHandler)

	// URI returns the URI currently committed by the engine.
	URI() string

	// Destroy releases engine resources. The engine must not be used afterwards.
	Destroy()
}
