package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for integration tests. It satisfies the
// application Clock port. Until Set is called it reports real time;
// afterwards it advances from the configured instant.
type Clock struct {
	mu    sync.Mutex
	base  time.Time
	setAt time.Time
	fixed bool
}

func NewClock() *Clock {
	return &Clock{}
}

// Set pins the clock to the given instant. Subsequent Now calls advance
// from it at real-time rate.
func (c *Clock) Set(instant time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = instant
	c.setAt = time.Now()
	c.fixed = true
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.fixed {
		return time.Now()
	}
	return c.base.Add(time.Since(c.setAt))
}
