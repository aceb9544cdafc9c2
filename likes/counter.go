package likes

import (
	"sync"
	"sync/atomic"
)

// Counter is the single process-wide like count, not tied to any user.
// Increment is the like button handler for it.
// The notifier may read Value but must not call Increment.
type Counter struct {
	mu       sync.Mutex // serializes Increment
	n        atomic.Int64
	notifier Notifier
}

func NewCounter(initial int, notifier Notifier) *Counter {
	c := &Counter{notifier: notifier}
	c.n.Store(int64(initial))
	return c
}

func (c *Counter) Value() int {
	return int(c.n.Load())
}

// Increment adds one like and sends one re-render notification.
// It matches the button handler signature.
func (c *Counter) Increment() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.n.Add(1)
	c.notifier.Rerender(newNotification(SourceCounter, 0, int(n)))
	return nil
}
