package testutil

import (
	"sync"

	"github.com/roach88/braglog/internal/entry"
)

// DayClock provides a settable calendar "today" for tests.
//
// Commands take their notion of today from an injected function; passing
// DayClock.Today keeps relative dates ("yesterday", "3 days ago") stable no
// matter when the test runs.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DayClock struct {
	mu    sync.Mutex
	today entry.Date
}

// NewDayClock creates a clock whose Today returns start.
func NewDayClock(start entry.Date) *DayClock {
	return &DayClock{today: start}
}

// Today returns the current day.
func (c *DayClock) Today() entry.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today
}

// Advance moves the clock forward by n days (backward if n is negative).
func (c *DayClock) Advance(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = c.today.AddDays(n)
}

// DaysAgo returns the date n days before the current day.
func (c *DayClock) DaysAgo(n int) entry.Date {
	return c.Today().AddDays(-n)
}
