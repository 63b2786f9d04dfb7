package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalescerMergesBurstIntoSingleRun(t *testing.T) {
	q := NewQueue()
	c := NewCoalescer(q)

	title := ""
	for _, v := range []string{"Loading", "Example", "Example Domain"} {
		v := v
		assert.True(t, c.Post("window-title", func() { title = v }))
	}

	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 1, q.Drain())
	assert.Equal(t, "Example Domain", title)
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	q := NewQueue()
	c := NewCoalescer(q)

	var title, uri string
	c.Post("title", func() { title = "t" })
	c.Post("uri", func() { uri = "u" })

	assert.Equal(t, 2, q.Drain())
	assert.Equal(t, "t", title)
	assert.Equal(t, "u", uri)
}

func TestCoalescerSchedulesAgainAfterRun(t *testing.T) {
	q := NewQueue()
	c := NewCoalescer(q)

	runs := 0
	c.Post("k", func() { runs++ })
	q.Drain()
	c.Post("k", func() { runs++ })
	q.Drain()

	assert.Equal(t, 2, runs)
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	q := NewQueue()
	c := NewCoalescer(q)

	ran := false
	c.Post("uri", func() { ran = true })
	c.Destroy()
	q.Drain()
	assert.False(t, ran)

	assert.False(t, c.Post("uri", func() { ran = true }))
	assert.Equal(t, 0, q.Len())
}

func TestCoalescerReportsClosedPoster(t *testing.T) {
	q := NewQueue()
	q.Close()
	c := NewCoalescer(q)

	assert.False(t, c.Post("k", func() {}))
	// A later post retries scheduling rather than assuming a pending run.
	assert.False(t, c.Post("k", func() {}))
}

func TestNewCoalescerPanicsOnNilPoster(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
