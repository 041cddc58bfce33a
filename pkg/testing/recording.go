package testing

import (
	"sync"

	"github.com/go-drift/tempo/pkg/timing"
)

// RecordingTarget is a timing.TimingTarget that records every callback it
// receives. All methods are safe for concurrent use.
//
// The zero value is ready to use.
type RecordingTarget struct {
	mu        sync.Mutex
	begins    int
	repeats   int
	reverses  int
	ends      int
	fractions []float64
}

var _ timing.TimingTarget = (*RecordingTarget)(nil)

// Begin implements timing.TimingTarget.
func (r *RecordingTarget) Begin(*timing.Animator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.begins++
}

// TimingEvent implements timing.TimingTarget.
func (r *RecordingTarget) TimingEvent(_ *timing.Animator, fraction float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fractions = append(r.fractions, fraction)
}

// Repeat implements timing.TimingTarget.
func (r *RecordingTarget) Repeat(*timing.Animator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.repeats++
}

// Reverse implements timing.TimingTarget.
func (r *RecordingTarget) Reverse(*timing.Animator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reverses++
}

// End implements timing.TimingTarget.
func (r *RecordingTarget) End(*timing.Animator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ends++
}

// Begins returns the number of begin callbacks received.
func (r *RecordingTarget) Begins() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.begins
}

// Repeats returns the number of repeat callbacks received.
func (r *RecordingTarget) Repeats() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repeats
}

// Reverses returns the number of reverse callbacks received.
func (r *RecordingTarget) Reverses() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reverses
}

// Ends returns the number of end callbacks received.
func (r *RecordingTarget) Ends() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ends
}

// Fractions returns a copy of every fraction reported so far, in order.
func (r *RecordingTarget) Fractions() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.fractions))
	copy(out, r.fractions)
	return out
}

// LastFraction returns the most recently reported fraction, or -1 if no
// timing event has been received.
func (r *RecordingTarget) LastFraction() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.fractions) == 0 {
		return -1
	}
	return r.fractions[len(r.fractions)-1]
}

// Reset clears all recorded state.
func (r *RecordingTarget) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.begins = 0
	r.repeats = 0
	r.reverses = 0
	r.ends = 0
	r.fractions = nil
}
