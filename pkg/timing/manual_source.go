package timing

import "time"

// ManualSource is a TimingSource driven explicitly by the caller. Nothing
// happens until [ManualSource.Tick] is invoked; submitted tasks run
// synchronously on the calling goroutine, in submission order.
//
// ManualSource is the source to use in tests and in frame-driven hosts
// that already own a render loop and want to pump animations themselves.
type ManualSource struct {
	listeners tickListeners
}

// NewManualSource creates a caller-driven timing source.
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// AddTickListener implements TimingSource.
func (s *ManualSource) AddTickListener(l TickListener) {
	s.listeners.add(l)
}

// RemoveTickListener implements TimingSource.
func (s *ManualSource) RemoveTickListener(l TickListener) {
	s.listeners.remove(l)
}

// Submit implements TimingSource. The task runs immediately on the
// calling goroutine. Callers are responsible for driving the source from
// one goroutine at a time; that goroutine is the dispatch context.
func (s *ManualSource) Submit(task func()) {
	task()
}

// Tick delivers a tick stamped with the current clock time to all
// registered listeners.
func (s *ManualSource) Tick() {
	s.TickAt(Now())
}

// TickAt delivers a tick with an explicit timestamp to all registered
// listeners.
func (s *ManualSource) TickAt(now time.Time) {
	for _, l := range s.listeners.snapshot() {
		l.Tick(now)
	}
}
