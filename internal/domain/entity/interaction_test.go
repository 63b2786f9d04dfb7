package entity_test

import (
	"sync"
	"testing"

	"github.com/bnema/dumbshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replyCounter struct {
	mu     sync.Mutex
	ok     int
	cancel int
}

func (r *replyCounter) Ok() {
	r.mu.Lock()
	r.ok++
	r.mu.Unlock()
}

func (r *replyCounter) Cancel() {
	r.mu.Lock()
	r.cancel++
	r.mu.Unlock()
}

func TestInteractionKind_String(t *testing.T) {
	assert.Equal(t, "alert", entity.InteractionAlert.String())
	assert.Equal(t, "confirm", entity.InteractionConfirm.String())
	assert.Equal(t, "unknown", entity.InteractionKind(42).String())
}

func TestPendingInteraction_Buttons(t *testing.T) {
	alert := entity.NewAlertInteraction("Notice", "Saved", func() {})
	require.Len(t, alert.Buttons(), 1)
	assert.Equal(t, "Ok", alert.Buttons()[0].Label)

	confirm := entity.NewConfirmInteraction("Leave page?", "Unsaved changes", func() {}, func() {})
	buttons := confirm.Buttons()
	require.Len(t, buttons, 2)
	assert.Equal(t, "Ok", buttons[0].Label)
	assert.Equal(t, entity.ResolutionOk, buttons[0].Resolution)
	assert.Equal(t, "Cancel", buttons[1].Label)
	assert.Equal(t, entity.ResolutionCancel, buttons[1].Resolution)
}

func TestPendingInteraction_IDsAreUnique(t *testing.T) {
	a := entity.NewAlertInteraction("", "", nil)
	b := entity.NewAlertInteraction("", "", nil)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPendingInteraction_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		kind       entity.InteractionKind
		action     entity.Resolution
		wantResult entity.Resolution
		wantOk     int
		wantCancel int
	}{
		{"alert ok", entity.InteractionAlert, entity.ResolutionOk, entity.ResolutionOk, 1, 0},
		{"alert dismiss acknowledges", entity.InteractionAlert, entity.ResolutionDismiss, entity.ResolutionOk, 1, 0},
		{"alert cancel acknowledges", entity.InteractionAlert, entity.ResolutionCancel, entity.ResolutionOk, 1, 0},
		{"confirm ok", entity.InteractionConfirm, entity.ResolutionOk, entity.ResolutionOk, 1, 0},
		{"confirm cancel", entity.InteractionConfirm, entity.ResolutionCancel, entity.ResolutionCancel, 0, 1},
		{"confirm dismiss declines", entity.InteractionConfirm, entity.ResolutionDismiss, entity.ResolutionCancel, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := &replyCounter{}
			var p entity.PendingInteraction
			if tt.kind == entity.InteractionAlert {
				p = entity.NewAlertInteraction("t", "m", reply.Ok)
			} else {
				p = entity.NewConfirmInteraction("t", "m", reply.Ok, reply.Cancel)
			}

			got := p.Resolve(tt.action)

			assert.Equal(t, tt.wantResult, got)
			assert.Equal(t, tt.wantOk, reply.ok)
			assert.Equal(t, tt.wantCancel, reply.cancel)
			assert.True(t, p.Continuation.Fired())
		})
	}
}

func TestContinuation_FiresAtMostOnce(t *testing.T) {
	reply := &replyCounter{}
	c := entity.NewConfirmContinuation(reply.Ok, reply.Cancel)
	assert.True(t, c.HasCancel())
	assert.False(t, c.Fired())

	c.Cancel()
	c.Ok()
	c.Cancel()

	assert.Equal(t, 0, reply.ok)
	assert.Equal(t, 1, reply.cancel)
}

func TestContinuation_CopiesShareGuard(t *testing.T) {
	reply := &replyCounter{}
	c := entity.NewAlertContinuation(reply.Ok)
	copied := c

	copied.Ok()
	c.Ok()

	assert.Equal(t, 1, reply.ok)
	assert.True(t, c.Fired())
	assert.False(t, c.HasCancel())
}

func TestContinuation_ConcurrentFire(t *testing.T) {
	reply := &replyCounter{}
	c := entity.NewConfirmContinuation(reply.Ok, reply.Cancel)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				c.Ok()
			} else {
				c.Cancel()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, reply.ok+reply.cancel)
}

func TestContinuation_ZeroValueIsInert(t *testing.T) {
	var c entity.Continuation
	assert.NotPanics(t, func() {
		c.Ok()
		c.Cancel()
	})
	assert.False(t, c.Fired())
}
