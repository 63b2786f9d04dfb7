// Package mainloop hands work to the UI loop from any goroutine.
package mainloop

import (
	"sync"

	"github.com/jwijenbergh/puregotk/v4/glib"
)

// Poster schedules fn to run later on the loop it represents.
// Post never blocks and never runs fn inline. It returns false when the
// loop no longer accepts work; fn will then never run.
type Poster interface {
	Post(fn func()) bool
}

// PosterFunc adapts a plain scheduling function to Poster.
type PosterFunc func(fn func()) bool

func (f PosterFunc) Post(fn func()) bool {
	return f(fn)
}

// GLibPoster posts onto the GTK main context through g_idle_add.
type GLibPoster struct {
	mu      sync.Mutex
	closed  bool
	nextID  uint64
	pending map[uint64]*glib.SourceFunc
}

// NewGLibPoster creates a poster bound to the default GLib main context.
func NewGLibPoster() *GLibPoster {
	return &GLibPoster{pending: make(map[uint64]*glib.SourceFunc)}
}

// Post schedules fn on the GTK main thread.
func (p *GLibPoster) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.nextID++
	id := p.nextID

	// The SourceFunc is kept alive in pending until GLib has invoked it.
	cb := glib.SourceFunc(func(_ uintptr) bool {
		p.mu.Lock()
		delete(p.pending, id)
		p.mu.Unlock()
		fn()
		return false
	})
	p.pending[id] = &cb
	p.mu.Unlock()

	glib.IdleAdd(&cb, 0)
	return true
}

// Pending returns the number of posted callbacks GLib has not run yet.
func (p *GLibPoster) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Close stops accepting work. Callbacks already handed to GLib still run.
func (p *GLibPoster) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}
