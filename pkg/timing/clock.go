package timing

import "time"

// Clock provides time for animator control operations. The default
// implementation uses system time. Tests can inject a fake clock via
// SetClock to control timing deterministically.
//
// Ticks carry their own timestamps from the timing source; the clock is
// consulted only by control operations (Start, Pause, Resume, ReverseNow)
// and the elapsed-time accessors.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the timing clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
