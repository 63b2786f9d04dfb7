package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// InteractionKind identifies which engine dialog produced a PendingInteraction.
type InteractionKind int

const (
	// InteractionAlert is a window.alert() request: one Ok affordance.
	InteractionAlert InteractionKind = iota
	// InteractionConfirm is a window.confirm() request: Ok and Cancel.
	InteractionConfirm
)

// InteractionKinds lists every kind the dialog machine tracks.
var InteractionKinds = []InteractionKind{InteractionAlert, InteractionConfirm}

// String returns a human-readable representation of the kind.
func (k InteractionKind) String() string {
	switch k {
	case InteractionAlert:
		return "alert"
	case InteractionConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Resolution is the user's answer to a PendingInteraction.
type Resolution int

const (
	// ResolutionOk is an explicit click on Ok.
	ResolutionOk Resolution = iota
	// ResolutionCancel is an explicit click on Cancel.
	ResolutionCancel
	// ResolutionDismiss is an implicit close (Escape, window close, shutdown).
	ResolutionDismiss
)

// String returns a human-readable representation of the resolution.
func (r Resolution) String() string {
	switch r {
	case ResolutionOk:
		return "ok"
	case ResolutionCancel:
		return "cancel"
	case ResolutionDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Button is an action affordance rendered for a PendingInteraction.
type Button struct {
	Label      string
	Resolution Resolution
}

var (
	okButton     = Button{Label: "Ok", Resolution: ResolutionOk}
	cancelButton = Button{Label: "Cancel", Resolution: ResolutionCancel}
)

// Continuation resumes the engine-side call that raised a dialog.
// It carries one action for alerts and two for confirms. Only the first
// invocation of either action has any effect; copies share that guard.
type Continuation struct {
	ok     func()
	cancel func()
	state  *continuationState
}

type continuationState struct {
	mu    sync.Mutex
	fired bool
}

// NewAlertContinuation returns a continuation with a single ok action.
func NewAlertContinuation(ok func()) Continuation {
	return Continuation{ok: ok, state: &continuationState{}}
}

// NewConfirmContinuation returns a continuation with ok and cancel actions.
func NewConfirmContinuation(ok, cancel func()) Continuation {
	return Continuation{ok: ok, cancel: cancel, state: &continuationState{}}
}

// HasCancel reports whether the continuation carries a cancel action.
func (c Continuation) HasCancel() bool {
	return c.cancel != nil
}

// Ok runs the ok action unless the continuation already fired.
func (c Continuation) Ok() {
	c.fire(c.ok)
}

// Cancel runs the cancel action unless the continuation already fired.
func (c Continuation) Cancel() {
	c.fire(c.cancel)
}

// Fired reports whether either action has been invoked.
func (c Continuation) Fired() bool {
	if c.state == nil {
		return false
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return c.state.fired
}

func (c Continuation) fire(action func()) {
	if c.state == nil {
		return
	}
	c.state.mu.Lock()
	if c.state.fired {
		c.state.mu.Unlock()
		return
	}
	c.state.fired = true
	c.state.mu.Unlock()

	if action != nil {
		action()
	}
}

// PendingInteraction is one in-flight engine dialog request awaiting the user.
type PendingInteraction struct {
	ID           string
	Kind         InteractionKind
	Title        string
	Message      string
	Continuation Continuation
	CreatedAt    time.Time
}

// NewAlertInteraction creates a pending alert resolved through ok.
func NewAlertInteraction(title, message string, ok func()) PendingInteraction {
	return PendingInteraction{
		ID:           uuid.NewString(),
		Kind:         InteractionAlert,
		Title:        title,
		Message:      message,
		Continuation: NewAlertContinuation(ok),
		CreatedAt:    time.Now(),
	}
}

// NewConfirmInteraction creates a pending confirm resolved through ok or cancel.
func NewConfirmInteraction(title, message string, ok, cancel func()) PendingInteraction {
	return PendingInteraction{
		ID:           uuid.NewString(),
		Kind:         InteractionConfirm,
		Title:        title,
		Message:      message,
		Continuation: NewConfirmContinuation(ok, cancel),
		CreatedAt:    time.Now(),
	}
}

// Buttons returns the affordances to render, in display order.
func (p PendingInteraction) Buttons() []Button {
	if p.Kind == InteractionConfirm {
		return []Button{okButton, cancelButton}
	}
	return []Button{okButton}
}

// Effective maps a user action to the answer the engine receives.
// Dismissing an alert acknowledges it; dismissing a confirm declines it.
// Alerts have no cancel affordance, so Cancel on an alert acknowledges it too.
func (p PendingInteraction) Effective(action Resolution) Resolution {
	if p.Kind == InteractionAlert {
		return ResolutionOk
	}
	if action == ResolutionOk {
		return ResolutionOk
	}
	return ResolutionCancel
}

// Resolve invokes the continuation for action and returns the effective answer.
func (p PendingInteraction) Resolve(action Resolution) Resolution {
	effective := p.Effective(action)
	if effective == ResolutionOk {
		p.Continuation.Ok()
	} else {
		p.Continuation.Cancel()
	}
	return effective
}
