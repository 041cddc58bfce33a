package timing_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/tempo/pkg/errors"
	"github.com/go-drift/tempo/pkg/timing"
)

// recordingListener collects tick timestamps.
type recordingListener struct {
	mu    sync.Mutex
	ticks []time.Time
	notch chan struct{}
}

func newRecordingListener() *recordingListener {
	return &recordingListener{notch: make(chan struct{}, 128)}
}

func (l *recordingListener) Tick(now time.Time) {
	l.mu.Lock()
	l.ticks = append(l.ticks, now)
	l.mu.Unlock()
	select {
	case l.notch <- struct{}{}:
	default:
	}
}

func (l *recordingListener) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ticks)
}

func (l *recordingListener) waitForTick(t *testing.T) {
	t.Helper()
	select {
	case <-l.notch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a tick")
	}
}

func TestManualSource_TickAt(t *testing.T) {
	source := timing.NewManualSource()
	l := newRecordingListener()
	source.AddTickListener(l)

	stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	source.TickAt(stamp)

	require.Equal(t, 1, l.count())
	assert.Equal(t, stamp, l.ticks[0])
}

func TestManualSource_ListenerDeduplicated(t *testing.T) {
	source := timing.NewManualSource()
	l := newRecordingListener()
	source.AddTickListener(l)
	source.AddTickListener(l)

	source.TickAt(time.Now())

	assert.Equal(t, 1, l.count(), "a listener registered twice ticks once")
}

func TestManualSource_RemoveTickListener(t *testing.T) {
	source := timing.NewManualSource()
	l := newRecordingListener()
	source.AddTickListener(l)
	source.RemoveTickListener(l)

	source.TickAt(time.Now())

	assert.Zero(t, l.count())
}

func TestManualSource_SubmitRunsInline(t *testing.T) {
	source := timing.NewManualSource()

	var order []int
	source.Submit(func() { order = append(order, 1) })
	source.Submit(func() { order = append(order, 2) })

	assert.Equal(t, []int{1, 2}, order, "submitted tasks run synchronously in order")
}

func TestTickerSource_DeliversTicks(t *testing.T) {
	source := timing.NewTickerSource(time.Millisecond)
	l := newRecordingListener()
	source.AddTickListener(l)

	source.Start()
	defer source.Stop()

	l.waitForTick(t)
	l.waitForTick(t)
	assert.GreaterOrEqual(t, l.count(), 2)
}

func TestTickerSource_SubmitRunsExactlyOnce(t *testing.T) {
	source := timing.NewTickerSource(time.Hour)
	source.Start()
	defer source.Stop()

	ran := make(chan struct{}, 2)
	source.Submit(func() { ran <- struct{}{} })

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("submitted task never ran")
	}
	select {
	case <-ran:
		t.Fatal("submitted task ran twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTickerSource_StopDropsLaterTasks(t *testing.T) {
	source := timing.NewTickerSource(time.Hour)
	source.Start()
	source.Stop()

	ran := make(chan struct{}, 1)
	// Must not block even though the dispatch goroutine is gone.
	source.Submit(func() { ran <- struct{}{} })

	select {
	case <-ran:
		t.Fatal("task submitted after Stop must not run")
	case <-time.After(50 * time.Millisecond):
	}
}

// panicHandler captures recovered panics reported by the library.
type panicHandler struct {
	mu     sync.Mutex
	panics []*errors.PanicError
}

func (h *panicHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func (h *panicHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.panics)
}

func (h *panicHandler) first() *errors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.panics) == 0 {
		return nil
	}
	return h.panics[0]
}

// panickyListener panics on its first tick, then behaves.
type panickyListener struct {
	*recordingListener
	once sync.Once
}

func (l *panickyListener) Tick(now time.Time) {
	var panicked bool
	l.once.Do(func() {
		panicked = true
		panic("listener exploded")
	})
	if !panicked {
		l.recordingListener.Tick(now)
	}
}

func TestTickerSource_RecoversListenerPanic(t *testing.T) {
	handler := &panicHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	source := timing.NewTickerSource(time.Millisecond)
	l := &panickyListener{recordingListener: newRecordingListener()}
	source.AddTickListener(l)

	source.Start()
	defer source.Stop()

	// The first tick panics; the dispatch goroutine survives and keeps
	// ticking.
	l.waitForTick(t)

	require.GreaterOrEqual(t, handler.count(), 1)
	assert.Equal(t, "timing.TickerSource.tick", handler.first().Op)
}
