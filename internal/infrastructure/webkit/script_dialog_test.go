package webkit

import (
	"sync"
	"testing"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialogHandle struct {
	mu        sync.Mutex
	confirmed []bool
	closed    int
}

func (f *fakeDialogHandle) SetConfirmed(confirmed bool) {
	f.mu.Lock()
	f.confirmed = append(f.confirmed, confirmed)
	f.mu.Unlock()
}

func (f *fakeDialogHandle) Close() {
	f.mu.Lock()
	f.closed++
	f.mu.Unlock()
}

func acquireFake(h *fakeDialogHandle) func() scriptDialogHandle {
	return func() scriptDialogHandle { return h }
}

func TestScriptDialogHandlers_NoHandlerFallsBack(t *testing.T) {
	var h scriptDialogHandlers
	acquired := false
	acquire := func() scriptDialogHandle {
		acquired = true
		return &fakeDialogHandle{}
	}

	assert.False(t, h.dispatch(ScriptDialogAlert, "t", "m", acquire))
	assert.False(t, h.dispatch(ScriptDialogConfirm, "t", "m", acquire))
	assert.False(t, acquired, "dialog must not be ref'd when WebKit keeps it")
}

func TestScriptDialogHandlers_PromptAndBeforeUnloadUnhandled(t *testing.T) {
	var h scriptDialogHandlers
	h.setAlert(func(string, string, port.AlertReply) { t.Fatal("alert handler called") })
	h.setConfirm(func(string, string, port.ConfirmReply) { t.Fatal("confirm handler called") })

	handle := &fakeDialogHandle{}
	assert.False(t, h.dispatch(ScriptDialogPrompt, "t", "m", acquireFake(handle)))
	assert.False(t, h.dispatch(ScriptDialogBeforeUnload, "t", "m", acquireFake(handle)))
	assert.Zero(t, handle.closed)
}

func TestScriptDialogHandlers_AlertReply(t *testing.T) {
	var h scriptDialogHandlers
	var got port.AlertReply
	var gotTitle, gotMessage string
	h.setAlert(func(title, message string, reply port.AlertReply) {
		gotTitle, gotMessage, got = title, message, reply
	})

	handle := &fakeDialogHandle{}
	require.True(t, h.dispatch(ScriptDialogAlert, "Notice", "Saved", acquireFake(handle)))
	require.NotNil(t, got)
	assert.Equal(t, "Notice", gotTitle)
	assert.Equal(t, "Saved", gotMessage)
	assert.Zero(t, handle.closed, "engine stays suspended until the reply")

	got.Ok()
	got.Ok()

	assert.Equal(t, 1, handle.closed)
	assert.Empty(t, handle.confirmed, "alerts carry no confirmation flag")
}

func TestScriptDialogHandlers_ConfirmReply(t *testing.T) {
	tests := []struct {
		name string
		act  func(port.ConfirmReply)
		want []bool
	}{
		{"ok", func(r port.ConfirmReply) { r.Ok() }, []bool{true}},
		{"cancel", func(r port.ConfirmReply) { r.Cancel() }, []bool{false}},
		{"cancel then ok", func(r port.ConfirmReply) { r.Cancel(); r.Ok() }, []bool{false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h scriptDialogHandlers
			var got port.ConfirmReply
			h.setConfirm(func(_, _ string, reply port.ConfirmReply) { got = reply })

			handle := &fakeDialogHandle{}
			require.True(t, h.dispatch(ScriptDialogConfirm, "Leave?", "Unsaved", acquireFake(handle)))
			tt.act(got)

			assert.Equal(t, tt.want, handle.confirmed)
			assert.Equal(t, 1, handle.closed)
		})
	}
}

func TestScriptDialogHandlers_ReplaceAndClear(t *testing.T) {
	var h scriptDialogHandlers
	first, second := 0, 0
	h.setAlert(func(string, string, port.AlertReply) { first++ })
	h.setAlert(func(string, string, port.AlertReply) { second++ })

	h.dispatch(ScriptDialogAlert, "", "", acquireFake(&fakeDialogHandle{}))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	h.setAlert(nil)
	assert.False(t, h.dispatch(ScriptDialogAlert, "", "", acquireFake(&fakeDialogHandle{})))
}

func TestDialogReply_ConcurrentAnswersCloseOnce(t *testing.T) {
	handle := &fakeDialogHandle{}
	reply := &dialogReply{handle: handle, confirm: true}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				reply.Ok()
			} else {
				reply.Cancel()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, handle.closed)
	assert.Len(t, handle.confirmed, 1)
}

func TestDialogTitle(t *testing.T) {
	assert.Equal(t, "example.com", dialogTitle("https://example.com/path?q=1", "Example"))
	assert.Equal(t, "Example", dialogTitle("about:blank", "Example"))
	assert.Equal(t, "about:blank", dialogTitle("about:blank", ""))
	assert.Equal(t, "", dialogTitle("", ""))
}
