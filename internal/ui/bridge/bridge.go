// Package bridge carries script dialog callbacks from the engine onto the
// UI loop, where the dialog machine picks them up.
package bridge

import (
	"context"
	"sync"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/dumbshell/internal/domain/entity"
	"github.com/bnema/dumbshell/internal/logging"
	"github.com/bnema/dumbshell/internal/ui/mainloop"
	"github.com/rs/zerolog"
)

// Publisher receives interactions on the UI loop.
type Publisher interface {
	Publish(p entity.PendingInteraction)
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithMetrics counts every interaction received from the engine.
func WithMetrics(metrics port.MetricsRecorder) Option {
	return func(b *Bridge) {
		if metrics != nil {
			b.metrics = metrics
		}
	}
}

// Bridge turns engine dialog callbacks into PendingInteractions and posts
// them to the UI loop. It keeps no reference to what it publishes.
// OnAlert and OnConfirm are safe to call from any goroutine.
type Bridge struct {
	logger  zerolog.Logger
	poster  mainloop.Poster
	sink    Publisher
	metrics port.MetricsRecorder

	mu     sync.Mutex
	engine port.Engine
}

// New creates a bridge that posts through poster into sink.
func New(ctx context.Context, poster mainloop.Poster, sink Publisher, opts ...Option) *Bridge {
	b := &Bridge{
		logger:  logging.FromContext(ctx).With().Str("component", "bridge").Logger(),
		poster:  poster,
		sink:    sink,
		metrics: port.NopMetrics{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register installs the bridge as engine's alert and confirm handler.
// The engine keeps one handler per kind, so this replaces any earlier one.
func (b *Bridge) Register(engine port.Engine) {
	if engine == nil {
		return
	}

	b.mu.Lock()
	previous := b.engine
	b.engine = engine
	b.mu.Unlock()

	if previous != nil {
		b.logger.Debug().Msg("replacing dialog handlers on engine")
	}
	engine.SetAlertHandler(b.OnAlert)
	engine.SetConfirmHandler(b.OnConfirm)
	b.logger.Debug().Msg("dialog handlers registered")
}

// Unregister restores the engine's default dialog handling.
func (b *Bridge) Unregister() {
	b.mu.Lock()
	engine := b.engine
	b.engine = nil
	b.mu.Unlock()

	if engine == nil {
		return
	}
	engine.SetAlertHandler(nil)
	engine.SetConfirmHandler(nil)
	b.logger.Debug().Msg("dialog handlers removed")
}

// OnAlert handles window.alert(). It returns without waiting for the user.
func (b *Bridge) OnAlert(title, message string, reply port.AlertReply) {
	var ok func()
	if reply != nil {
		ok = reply.Ok
	}
	b.publish(entity.NewAlertInteraction(title, message, ok))
}

// OnConfirm handles window.confirm(). It returns without waiting for the user.
func (b *Bridge) OnConfirm(title, message string, reply port.ConfirmReply) {
	var ok, cancel func()
	if reply != nil {
		ok, cancel = reply.Ok, reply.Cancel
	}
	b.publish(entity.NewConfirmInteraction(title, message, ok, cancel))
}

func (b *Bridge) publish(p entity.PendingInteraction) {
	b.metrics.InteractionReceived(p.Kind.String())

	log := b.logger.With().
		Str("interaction_id", p.ID).
		Str("interaction_kind", p.Kind.String()).
		Logger()

	if b.poster != nil && b.sink != nil && b.poster.Post(func() { b.sink.Publish(p) }) {
		log.Debug().Msg("dialog request posted to UI loop")
		return
	}

	// The UI loop is gone: answer now so the page does not hang.
	effective := p.Resolve(entity.ResolutionDismiss)
	b.metrics.InteractionResolved(p.Kind.String(), effective.String())
	log.Warn().Str("resolution", effective.String()).Msg("UI loop unavailable, dialog dismissed")
}
