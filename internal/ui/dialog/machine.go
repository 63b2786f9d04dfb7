// Package dialog holds the script dialog state machine: one
// Hidden | Visible(interaction) slot per dialog kind.
package dialog

import (
	"context"
	"sync"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/dumbshell/internal/domain/entity"
	"github.com/bnema/dumbshell/internal/logging"
	"github.com/rs/zerolog"
)

// Renderer draws the dialog for one kind. Show replaces whatever is on
// screen; resolve reports the user's action back to the machine and may be
// called any number of times. Hide removes the dialog.
type Renderer interface {
	Show(p entity.PendingInteraction, resolve func(entity.Resolution))
	Hide()
}

// State is a snapshot of one kind's slot.
type State struct {
	Visible     bool
	Interaction entity.PendingInteraction
}

// Transition describes a visibility change of one interaction.
type Transition struct {
	Kind          entity.InteractionKind
	InteractionID string
	Visible       bool
	// Superseded is set when the interaction was hidden without being resolved.
	Superseded bool
	// Resolution is the effective answer; only meaningful for resolved hides.
	Resolution entity.Resolution
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithMetrics records received, resolved and superseded interactions.
func WithMetrics(metrics port.MetricsRecorder) MachineOption {
	return func(m *Machine) {
		if metrics != nil {
			m.metrics = metrics
		}
	}
}

// WithTransitionHook calls fn after every visibility change, outside the lock.
func WithTransitionHook(fn func(Transition)) MachineOption {
	return func(m *Machine) {
		m.hook = fn
	}
}

type slot struct {
	visible  bool
	current  entity.PendingInteraction
	queue    []entity.PendingInteraction
	renderer Renderer
}

// Machine owns every pending script dialog. It is meant to be driven from
// the UI loop; the mutex only protects readers on other goroutines such as
// the debug endpoint.
type Machine struct {
	logger  zerolog.Logger
	metrics port.MetricsRecorder
	hook    func(Transition)

	mu     sync.Mutex
	policy Policy
	slots  map[entity.InteractionKind]*slot
	closed bool

	// superseded holds interactions hidden without a resolution, so they stay
	// hidden. Close answers them; until then each one keeps its page call open.
	superseded map[string]entity.PendingInteraction
}

// NewMachine creates a machine with every kind Hidden.
func NewMachine(ctx context.Context, policy Policy, opts ...MachineOption) *Machine {
	m := &Machine{
		logger:     logging.FromContext(ctx).With().Str("component", "dialog").Logger(),
		metrics:    port.NopMetrics{},
		policy:     policy,
		slots:      make(map[entity.InteractionKind]*slot, len(entity.InteractionKinds)),
		superseded: make(map[string]entity.PendingInteraction),
	}
	for _, kind := range entity.InteractionKinds {
		m.slots[kind] = &slot{}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetRenderer attaches the renderer for kind. A dialog that is already
// visible is shown on it right away.
func (m *Machine) SetRenderer(kind entity.InteractionKind, r Renderer) {
	m.mu.Lock()
	s, ok := m.slots[kind]
	if !ok {
		m.mu.Unlock()
		return
	}
	s.renderer = r
	visible, current := s.visible, s.current
	m.mu.Unlock()

	if r != nil && visible {
		r.Show(current, m.resolver(current.ID))
	}
}

// SetPolicy changes the same-kind policy for later publishes.
// Interactions already queued stay queued.
func (m *Machine) SetPolicy(policy Policy) {
	m.mu.Lock()
	old := m.policy
	m.policy = policy
	m.mu.Unlock()

	if old != policy {
		m.logger.Info().Str("from", old.String()).Str("to", policy.String()).Msg("dialog policy changed")
	}
}

// Policy returns the current same-kind policy.
func (m *Machine) Policy() Policy {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.policy
}

// Publish makes p visible, or handles it per Policy when its kind is busy.
// After Close, p is dismissed immediately so the page is not left waiting.
func (m *Machine) Publish(p entity.PendingInteraction) {
	log := m.logger.With().
		Str("interaction_id", p.ID).
		Str("interaction_kind", p.Kind.String()).
		Logger()

	// A resolved interaction never becomes visible again.
	if p.Continuation.Fired() {
		log.Debug().Msg("ignoring publish of resolved interaction")
		return
	}

	m.mu.Lock()
	s, ok := m.slots[p.Kind]
	if m.closed || !ok {
		m.mu.Unlock()
		if !ok {
			log.Warn().Msg("unknown dialog kind, dismissing")
		} else {
			log.Debug().Msg("dialog machine closed, dismissing")
		}
		m.finish(p, entity.ResolutionDismiss)
		return
	}

	if s.holds(p.ID) {
		m.mu.Unlock()
		log.Debug().Msg("interaction already pending")
		return
	}
	if _, gone := m.superseded[p.ID]; gone {
		m.mu.Unlock()
		log.Debug().Msg("ignoring publish of superseded interaction")
		return
	}

	if !s.visible {
		s.visible = true
		s.current = p
		r := s.renderer
		m.mu.Unlock()

		log.Debug().Str("title", p.Title).Msg("dialog shown")
		m.emit(Transition{Kind: p.Kind, InteractionID: p.ID, Visible: true})
		if r != nil {
			r.Show(p, m.resolver(p.ID))
		}
		return
	}

	if m.policy == PolicyQueue {
		s.queue = append(s.queue, p)
		queued := len(s.queue)
		m.mu.Unlock()

		log.Debug().Int("queued", queued).Msg("dialog queued behind visible one")
		return
	}

	orphan := s.current
	s.current = p
	m.superseded[orphan.ID] = orphan
	r := s.renderer
	m.mu.Unlock()

	log.Warn().
		Str("superseded_id", orphan.ID).
		Msg("dialog superseded, previous page call stays open until close")
	m.metrics.InteractionSuperseded(p.Kind.String())
	m.emit(Transition{Kind: orphan.Kind, InteractionID: orphan.ID, Visible: false, Superseded: true})
	m.emit(Transition{Kind: p.Kind, InteractionID: p.ID, Visible: true})
	if r != nil {
		r.Show(p, m.resolver(p.ID))
	}
}

// Resolve answers the visible dialog of kind with action. It returns false,
// doing nothing, when that kind is Hidden.
func (m *Machine) Resolve(kind entity.InteractionKind, action entity.Resolution) bool {
	return m.resolveIf(kind, "", action)
}

// ResolveID answers the interaction with id if it is the visible one.
// Clicks on a dialog that has since been replaced are ignored.
func (m *Machine) ResolveID(id string, action entity.Resolution) bool {
	if id == "" {
		return false
	}
	for _, kind := range entity.InteractionKinds {
		if m.resolveIf(kind, id, action) {
			return true
		}
	}
	return false
}

func (m *Machine) resolveIf(kind entity.InteractionKind, id string, action entity.Resolution) bool {
	m.mu.Lock()
	s, ok := m.slots[kind]
	if !ok || !s.visible || (id != "" && s.current.ID != id) {
		m.mu.Unlock()
		return false
	}

	p := s.current
	next, hasNext := s.advance()
	r := s.renderer
	m.mu.Unlock()

	if r != nil && !hasNext {
		r.Hide()
	}
	effective := m.finish(p, action)
	m.emit(Transition{Kind: p.Kind, InteractionID: p.ID, Visible: false, Resolution: effective})

	if hasNext {
		m.emit(Transition{Kind: next.Kind, InteractionID: next.ID, Visible: true})
		if r != nil {
			r.Show(next, m.resolver(next.ID))
		}
	}
	return true
}

// holds reports whether id is the visible or a queued interaction.
// Must be called with m.mu held.
func (s *slot) holds(id string) bool {
	if s.visible && s.current.ID == id {
		return true
	}
	for _, q := range s.queue {
		if q.ID == id {
			return true
		}
	}
	return false
}

// advance moves the slot to its next queued interaction or to Hidden.
// Must be called with m.mu held.
func (s *slot) advance() (entity.PendingInteraction, bool) {
	if len(s.queue) == 0 {
		s.visible = false
		s.current = entity.PendingInteraction{}
		return entity.PendingInteraction{}, false
	}
	next := s.queue[0]
	s.queue[0] = entity.PendingInteraction{}
	s.queue = s.queue[1:]
	s.current = next
	return next, true
}

// State returns a snapshot of kind's slot.
func (m *Machine) State(kind entity.InteractionKind) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[kind]
	if !ok || !s.visible {
		return State{}
	}
	return State{Visible: true, Interaction: s.current}
}

// Pending returns how many interactions of kind wait behind the visible one.
func (m *Machine) Pending(kind entity.InteractionKind) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.slots[kind]; ok {
		return len(s.queue)
	}
	return 0
}

// Close dismisses every visible, queued and superseded interaction and
// hides all renderers. Later publishes are dismissed on arrival. Safe to call twice.
func (m *Machine) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true

	var visible, queued, orphans []entity.PendingInteraction
	var renderers []Renderer
	for _, kind := range entity.InteractionKinds {
		s := m.slots[kind]
		if s.visible {
			visible = append(visible, s.current)
			if s.renderer != nil {
				renderers = append(renderers, s.renderer)
			}
		}
		queued = append(queued, s.queue...)
		s.visible = false
		s.current = entity.PendingInteraction{}
		s.queue = nil
	}
	for _, p := range m.superseded {
		orphans = append(orphans, p)
	}
	m.superseded = make(map[string]entity.PendingInteraction)
	m.mu.Unlock()

	for _, r := range renderers {
		r.Hide()
	}
	for _, p := range visible {
		effective := m.finish(p, entity.ResolutionDismiss)
		m.emit(Transition{Kind: p.Kind, InteractionID: p.ID, Visible: false, Resolution: effective})
	}
	// Queued interactions were never on screen: answer them without a transition.
	for _, p := range queued {
		m.finish(p, entity.ResolutionDismiss)
	}
	// Superseded ones were never answered; release the page calls they hold.
	for _, p := range orphans {
		m.finish(p, entity.ResolutionDismiss)
	}
	m.logger.Debug().
		Int("visible", len(visible)).
		Int("queued", len(queued)).
		Int("superseded", len(orphans)).
		Msg("dialog machine closed, pending dialogs dismissed")
}

func (m *Machine) finish(p entity.PendingInteraction, action entity.Resolution) entity.Resolution {
	effective := p.Resolve(action)
	m.metrics.InteractionResolved(p.Kind.String(), effective.String())
	m.logger.Debug().
		Str("interaction_id", p.ID).
		Str("interaction_kind", p.Kind.String()).
		Str("action", action.String()).
		Str("resolution", effective.String()).
		Msg("dialog resolved")
	return effective
}

func (m *Machine) resolver(id string) func(entity.Resolution) {
	return func(action entity.Resolution) {
		m.ResolveID(id, action)
	}
}

func (m *Machine) emit(t Transition) {
	if m.hook != nil {
		m.hook(t)
	}
}
