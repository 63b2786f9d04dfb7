package mainloop

import (
	"context"
	"sync"
)

// Queue is a Poster backed by an unbounded FIFO. Whoever calls Run or Drain
// plays the role of the UI loop. Post never blocks the caller.
type Queue struct {
	mu     sync.Mutex
	tasks  []func()
	closed bool
	wake   chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Post appends fn. It returns false after Close.
func (q *Queue) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Len returns the number of tasks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Drain runs queued tasks on the calling goroutine, including tasks posted
// while draining, until the queue is empty. It returns how many ran.
func (q *Queue) Drain() int {
	ran := 0
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return ran
		}
		fn := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		fn()
		ran++
	}
}

// Run drains the queue whenever work arrives until ctx is done or the queue
// is closed. Tasks accepted before Close still run.
func (q *Queue) Run(ctx context.Context) {
	for {
		q.Drain()

		q.mu.Lock()
		closed := q.closed
		q.mu.Unlock()
		if closed {
			q.Drain()
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-q.wake:
		}
	}
}

// Close stops accepting tasks and wakes Run so it can return.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}
