package component

import (
	"context"
	"testing"

	"github.com/bnema/dumbshell/internal/domain/entity"
	"github.com/bnema/dumbshell/internal/ui/dialog"
	"github.com/jwijenbergh/puregotk/v4/gdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A popup without widgets exercises the state handling only.
func newHeadlessPopup() *ScriptDialogPopup {
	return &ScriptDialogPopup{}
}

func TestScriptDialogPopup_RespondForwardsOnlyWhileVisible(t *testing.T) {
	sp := newHeadlessPopup()
	var got []entity.Resolution

	sp.respond(entity.ResolutionOk)
	assert.Empty(t, got)

	p := entity.NewConfirmInteraction("Leave?", "Unsaved", func() {}, func() {})
	sp.Show(p, func(r entity.Resolution) { got = append(got, r) })
	assert.True(t, sp.IsVisible())
	assert.Equal(t, p.ID, sp.ShownID())

	sp.respond(entity.ResolutionCancel)
	assert.Equal(t, []entity.Resolution{entity.ResolutionCancel}, got)

	sp.Hide()
	assert.False(t, sp.IsVisible())
	assert.Empty(t, sp.ShownID())

	sp.respond(entity.ResolutionOk)
	assert.Len(t, got, 1)
}

func TestScriptDialogPopup_DrivenByMachine(t *testing.T) {
	m := dialog.NewMachine(context.Background(), dialog.PolicyQueue)
	sp := newHeadlessPopup()
	m.SetRenderer(entity.InteractionAlert, sp)

	acked := 0
	p := entity.NewAlertInteraction("Notice", "Saved", func() { acked++ })
	m.Publish(p)
	require.True(t, sp.IsVisible())

	// Escape on an alert acknowledges it.
	sp.respond(entity.ResolutionDismiss)

	assert.Equal(t, 1, acked)
	assert.False(t, sp.IsVisible())
	assert.False(t, m.State(entity.InteractionAlert).Visible)
}

func TestCardBounds_Contains(t *testing.T) {
	card := cardBounds{left: 100, top: 50, width: 200, height: 120}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 200, 110, true},
		{"top left corner", 100, 50, true},
		{"left of card", 99, 110, false},
		{"right edge is outside", 300, 110, false},
		{"above card", 200, 49, false},
		{"below card", 200, 170, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, card.contains(tt.x, tt.y))
		})
	}
}

func TestScriptDialogPopup_OutsideClickDismisses(t *testing.T) {
	card := cardBounds{left: 100, top: 50, width: 200, height: 120}

	tests := []struct {
		name       string
		kind       entity.InteractionKind
		x, y       float64
		wantOk     int
		wantCancel int
		wantOpen   bool
	}{
		{"click on card keeps confirm open", entity.InteractionConfirm, 150, 100, 0, 0, true},
		{"click beside confirm cancels it", entity.InteractionConfirm, 10, 10, 0, 1, false},
		{"click beside alert acknowledges it", entity.InteractionAlert, 400, 300, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := dialog.NewMachine(context.Background(), dialog.PolicyQueue)
			sp := newHeadlessPopup()
			m.SetRenderer(tt.kind, sp)

			ok, cancel := 0, 0
			if tt.kind == entity.InteractionAlert {
				m.Publish(entity.NewAlertInteraction("t", "m", func() { ok++ }))
			} else {
				m.Publish(entity.NewConfirmInteraction("t", "m", func() { ok++ }, func() { cancel++ }))
			}

			sp.handleScrimPress(tt.x, tt.y, card)

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantCancel, cancel)
			assert.Equal(t, tt.wantOpen, sp.IsVisible())
			assert.Equal(t, tt.wantOpen, m.State(tt.kind).Visible)
		})
	}
}

func TestScriptDialogPopup_EscapeOnlyWhileVisible(t *testing.T) {
	m := dialog.NewMachine(context.Background(), dialog.PolicyQueue)
	sp := newHeadlessPopup()
	m.SetRenderer(entity.InteractionConfirm, sp)

	assert.False(t, sp.handleKey(uint(gdk.KEY_Escape)), "nothing to dismiss")

	cancels := 0
	m.Publish(entity.NewConfirmInteraction("t", "m", func() {}, func() { cancels++ }))

	assert.False(t, sp.handleKey(uint(gdk.KEY_Return)))
	assert.True(t, sp.IsVisible())

	assert.True(t, sp.handleKey(uint(gdk.KEY_Escape)))
	assert.Equal(t, 1, cancels)
	assert.False(t, sp.IsVisible())
}
