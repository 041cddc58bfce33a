package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/go-drift/tempo/pkg/timing"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// InstallFakeClock installs a fresh FakeClock as the timing clock and
// restores the previous clock when the test ends.
func InstallFakeClock(t *testing.T) *FakeClock {
	t.Helper()
	clk := NewFakeClock()
	prev := timing.SetClock(clk)
	t.Cleanup(func() { timing.SetClock(prev) })
	return clk
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
