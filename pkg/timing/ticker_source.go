package timing

import (
	"sync"
	"time"

	"github.com/go-drift/tempo/pkg/errors"
)

// TickerSource is a production TimingSource backed by a [time.Ticker].
//
// One goroutine owns the ticker and executes both ticks and submitted
// tasks, so all notifications dispatched through the source for a given
// animator run in a single serialized context. Panics escaping user
// callbacks are recovered and reported through the pkg/errors handler so
// one misbehaving target cannot kill the dispatch goroutine.
//
// A TickerSource must be started before it delivers ticks and stopped
// when no longer needed:
//
//	source := timing.NewTickerSource(16 * time.Millisecond)
//	source.Start()
//	defer source.Stop()
type TickerSource struct {
	interval  time.Duration
	listeners tickListeners

	tasks chan func()
	done  chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
}

// NewTickerSource creates a timing source that ticks at the given
// interval once started. The interval must be positive; a typical
// display-rate interval is 16ms.
func NewTickerSource(interval time.Duration) *TickerSource {
	return &TickerSource{
		interval: interval,
		tasks:    make(chan func(), 64),
		done:     make(chan struct{}),
	}
}

// Start launches the dispatch goroutine. Starting an already started or
// stopped source is a no-op.
func (s *TickerSource) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	go s.run()
}

// Stop terminates the dispatch goroutine and releases the ticker. Tasks
// submitted after Stop are dropped. A stopped source cannot be restarted.
func (s *TickerSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.done)
}

// AddTickListener implements TimingSource.
func (s *TickerSource) AddTickListener(l TickListener) {
	s.listeners.add(l)
}

// RemoveTickListener implements TimingSource.
func (s *TickerSource) RemoveTickListener(l TickListener) {
	s.listeners.remove(l)
}

// Submit implements TimingSource. The task is queued for the dispatch
// goroutine and runs exactly once, unless the source is stopped first.
func (s *TickerSource) Submit(task func()) {
	select {
	case s.tasks <- task:
	case <-s.done:
	}
}

func (s *TickerSource) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		// Drain pending tasks before the next tick so a notification
		// submitted during one tick cannot be reordered behind a later
		// tick's timing events.
		select {
		case task := <-s.tasks:
			s.invoke(task)
			continue
		default:
		}
		select {
		case <-s.done:
			return
		case task := <-s.tasks:
			s.invoke(task)
		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

func (s *TickerSource) tick(now time.Time) {
	for _, l := range s.listeners.snapshot() {
		s.invokeTick(l, now)
	}
}

func (s *TickerSource) invoke(task func()) {
	defer errors.Recover("timing.TickerSource.task")
	task()
}

func (s *TickerSource) invokeTick(l TickListener, now time.Time) {
	defer errors.Recover("timing.TickerSource.tick")
	l.Tick(now)
}
