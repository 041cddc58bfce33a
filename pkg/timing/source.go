package timing

import (
	"sync"
	"time"
)

// TickListener is implemented by consumers of a timing source's ticks.
// [Animator] implements it; client code normally does not.
type TickListener interface {
	// Tick is called with the timestamp of the tick.
	Tick(now time.Time)
}

// TimingSource delivers the periodic ticks that drive animators, and
// serializes the notification tasks they submit.
//
// Implementations must guarantee that each submitted task runs exactly
// once and that, for a given animator, all tasks and ticks execute in one
// consistent, serialized context: two ticks' notification batches never
// interleave.
type TimingSource interface {
	// AddTickListener registers a listener for future ticks. Adding a
	// listener that is already registered is a no-op.
	AddTickListener(l TickListener)

	// RemoveTickListener deregisters a listener. Removing a listener that
	// is not registered is a no-op.
	RemoveTickListener(l TickListener)

	// Submit schedules task to run on the source's dispatch context.
	Submit(task func())
}

// tickListeners is the shared listener bookkeeping for timing source
// implementations. Same copy-on-write discipline as targetSet.
type tickListeners struct {
	mu   sync.Mutex
	list []TickListener
}

func (s *tickListeners) add(l TickListener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.list {
		if existing == l {
			return
		}
	}
	next := make([]TickListener, len(s.list), len(s.list)+1)
	copy(next, s.list)
	s.list = append(next, l)
}

func (s *tickListeners) remove(l TickListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.list {
		if existing == l {
			next := make([]TickListener, 0, len(s.list)-1)
			next = append(next, s.list[:i]...)
			next = append(next, s.list[i+1:]...)
			s.list = next
			return
		}
	}
}

func (s *tickListeners) snapshot() []TickListener {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list
}
