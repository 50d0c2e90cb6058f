package mock

import (
	"sync"
	"time"
)

// Clock is a frozen clock so forecast month labels stay stable across a run.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a Clock pinned to the given instant.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to a new instant.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
