package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one run on the loop.
// The last fn posted for a key before the loop picks it up wins.
type Coalescer struct {
	mu        sync.Mutex
	latest    map[string]func()
	poster    Poster
	destroyed bool
}

// NewCoalescer panics on a nil poster.
func NewCoalescer(poster Poster) *Coalescer {
	if poster == nil {
		panic("mainloop.NewCoalescer: poster cannot be nil")
	}
	return &Coalescer{
		latest: make(map[string]func()),
		poster: poster,
	}
}

// Post records fn as the latest task for key and schedules a run unless one
// is already waiting. It returns false when the work was dropped.
func (c *Coalescer) Post(key string, fn func()) bool {
	if fn == nil || key == "" {
		return false
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return false
	}
	_, scheduled := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if scheduled {
		return true
	}

	if !c.poster.Post(func() { c.run(key) }) {
		c.mu.Lock()
		delete(c.latest, key)
		c.mu.Unlock()
		return false
	}
	return true
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.latest[key]
	delete(c.latest, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if destroyed || fn == nil {
		return
	}
	fn()
}

// Destroy drops pending work; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.latest = map[string]func(){}
	c.mu.Unlock()
}
