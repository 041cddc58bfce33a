package timing

import (
	"context"
	"sync"
	"time"

	"github.com/go-drift/tempo/pkg/errors"
)

// Animator controls the timing of one animation.
//
// An animation is described by a "cycle" (one pass of the fraction from 0
// to 1, or 1 to 0, lasting the configured duration) and an "envelope"
// that controls how cycles are started, ended, and chained (repeat count,
// repeat behavior, end behavior). On every tick from the timing source
// the animator computes the current fraction and reports it to its
// registered [TimingTarget] set.
//
// For example, this animation runs for one second, reporting timing
// events to myTarget as it goes:
//
//	animator, err := timing.New(timing.Config{
//	    Duration: time.Second,
//	    Source:   source,
//	})
//	if err != nil { ... }
//	animator.AddTarget(myTarget)
//	animator.Start()
//
// The following variation runs a half-second cycle 4 times, reversing
// direction each cycle:
//
//	animator, err := timing.New(timing.Config{
//	    Duration:       500 * time.Millisecond,
//	    RepeatCount:    4,
//	    RepeatBehavior: timing.RepeatReverse,
//	    Source:         source,
//	})
//
// Animator is safe for concurrent use: control operations may arrive from
// any goroutine while ticks keep arriving from the source. Target
// callbacks are never invoked while internal state is locked, so a
// callback may reentrantly call any control operation, including Stop.
type Animator struct {
	config Config

	// targets may be mutated concurrently with an in-flight notification
	// pass; membership changes are best-effort for that pass and exact
	// for future passes.
	targets targetSet

	// mu guards every field below. Guarded sections are O(1) and never
	// block. Never hold mu while invoking target callbacks or methods on
	// the timing source.
	mu               sync.Mutex
	startTime        time.Time
	cycleStartTime   time.Time
	running          bool
	currentDirection Direction
	pauseBeginTime   time.Time // zero when not paused

	// Transient per-tick signals, set during fraction calculation and
	// consumed by the same tick's notification step.
	timeToStop      bool
	tellAboutRepeat bool

	// done is the completion signal for the current run: created fresh on
	// each start, closed exactly once when the run ends, nil while idle.
	done chan struct{}
}

// New constructs an animator from cfg. It returns a *errors.ConfigError
// if the configuration violates the construction-time contract (duration
// positive, repeat count >= 1 or Infinite, source present).
func New(cfg Config) (*Animator, error) {
	if cfg.RepeatCount == 0 {
		cfg.RepeatCount = 1
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Animator{
		config:           cfg,
		currentDirection: cfg.StartDirection,
	}, nil
}

// Duration returns the length of one cycle of this animation.
func (a *Animator) Duration() time.Duration { return a.config.Duration }

// EndBehavior returns the behavior at the end of the animation.
func (a *Animator) EndBehavior() EndBehavior { return a.config.EndBehavior }

// RepeatBehavior returns the behavior of successive cycles.
func (a *Animator) RepeatBehavior() RepeatBehavior { return a.config.RepeatBehavior }

// RepeatCount returns the number of cycles the animation runs, or
// Infinite.
func (a *Animator) RepeatCount() int64 { return a.config.RepeatCount }

// StartDirection returns the direction of the initial cycle.
func (a *Animator) StartDirection() Direction { return a.config.StartDirection }

// Source returns the timing source driving this animator.
func (a *Animator) Source() TimingSource { return a.config.Source }

// AddTarget registers a timing target. This can be done at any time
// before, during, or after a run; the target begins receiving callbacks
// as soon as it is added. Adding a target that is already registered, or
// a nil target, is a no-op.
func (a *Animator) AddTarget(target TimingTarget) {
	a.targets.add(target)
}

// RemoveTarget deregisters a timing target; it stops receiving callbacks
// as soon as it is removed. Removing an unregistered target is a no-op.
func (a *Animator) RemoveTarget(target TimingTarget) {
	a.targets.remove(target)
}

// ClearTargets deregisters all timing targets.
func (a *Animator) ClearTargets() {
	a.targets.clear()
}

// Start starts the animation in its configured start direction.
//
// Start panics with a *errors.StateError if the animation is already
// running: starting a running animator is caller misuse, valid only
// before a run or after the previous run has ended.
func (a *Animator) Start() {
	a.startIn(a.config.StartDirection, "Animator.Start")
}

// StartReverse starts the animation opposite to its configured start
// direction. Like [Animator.Start], it panics with a *errors.StateError
// if the animation is already running.
func (a *Animator) StartReverse() {
	a.startIn(a.config.StartDirection.Opposite(), "Animator.StartReverse")
}

func (a *Animator) startIn(direction Direction, op string) {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		panic(&errors.StateError{Op: op, State: "already running"})
	}
	now := Now()
	a.startTime = now
	a.cycleStartTime = now
	a.currentDirection = direction
	a.timeToStop = false
	a.tellAboutRepeat = false
	a.pauseBeginTime = time.Time{}
	a.running = true
	a.done = make(chan struct{})
	a.mu.Unlock()

	if len(a.targets.snapshot()) > 0 {
		a.config.Source.Submit(func() {
			for _, t := range a.targets.snapshot() {
				t.Begin(a)
			}
		})
	}
	a.config.Source.AddTickListener(a)
}

// IsRunning reports whether the animation has been started and has not
// yet completed. A paused animation is still running.
func (a *Animator) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// IsPaused reports whether the animation is running but paused.
func (a *Animator) IsPaused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pausedLocked()
}

func (a *Animator) pausedLocked() bool {
	return a.running && !a.pauseBeginTime.IsZero()
}

// CurrentDirection returns the direction the animation is currently
// moving in. If the animation is not running it returns the configured
// start direction.
func (a *Animator) CurrentDirection() Direction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentDirection
}

// Stop stops a running animation and delivers an end notification to all
// registered targets. Most animations stop on their own when their
// repeats are exhausted; Stop is for ending one early. It returns false,
// with no other effect, if the animation was not running.
func (a *Animator) Stop() bool {
	return a.stop(true, false)
}

// Cancel is like [Animator.Stop] except that no end notification is
// delivered: the animation simply stops immediately. It returns false if
// the animation was not running.
func (a *Animator) Cancel() bool {
	return a.stop(false, false)
}

// stop ends the current run. inTickContext is true when the call
// originates from the animator's own tick handling: the end notification
// then runs inline rather than being submitted, so it stays causally
// after that tick's final timing event and cannot be reordered against or
// duplicated by a subsequent tick.
func (a *Animator) stop(notify, inTickContext bool) bool {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return false
	}
	a.running = false
	a.currentDirection = a.config.StartDirection
	a.pauseBeginTime = time.Time{}
	done := a.done
	a.done = nil
	a.mu.Unlock()

	a.config.Source.RemoveTickListener(a)
	if notify && len(a.targets.snapshot()) > 0 {
		task := func() {
			for _, t := range a.targets.snapshot() {
				t.End(a)
			}
		}
		if inTickContext {
			task()
		} else {
			a.config.Source.Submit(task)
		}
	}
	close(done)
	return true
}

// Pause pauses a running animation: the animator deregisters from the
// timing source, so no further timing events are delivered and elapsed
// time freezes at the pause instant. Pausing a non-running or already
// paused animation has no effect.
func (a *Animator) Pause() {
	a.mu.Lock()
	canPause := a.running && a.pauseBeginTime.IsZero()
	if canPause {
		a.pauseBeginTime = Now()
	}
	a.mu.Unlock()
	if canPause {
		a.config.Source.RemoveTickListener(a)
	}
}

// Resume resumes a paused animation. Both the start time and the cycle
// start time are shifted forward by the paused interval, so subsequent
// elapsed-time computations behave as if the pause never happened.
// Resuming an animation that is not paused has no effect.
func (a *Animator) Resume() {
	a.mu.Lock()
	paused := a.pausedLocked()
	if paused {
		pauseDelta := Now().Sub(a.pauseBeginTime)
		a.startTime = a.startTime.Add(pauseDelta)
		a.cycleStartTime = a.cycleStartTime.Add(pauseDelta)
		a.pauseBeginTime = time.Time{}
	}
	a.mu.Unlock()
	if paused {
		a.config.Source.AddTickListener(a)
	}
}

// ReverseNow flips the direction of a running animation while preserving
// its current visual position: the fraction observed on the next tick is
// the mirror image of the fraction just before the reversal. It returns
// false if the animation is not running or is paused; reversal mid-pause
// is rejected.
func (a *Animator) ReverseNow() bool {
	a.mu.Lock()
	if !a.running || a.pausedLocked() {
		a.mu.Unlock()
		return false
	}
	now := Now()
	cycleElapsed := now.Sub(a.cycleStartTime)
	timeLeft := a.config.Duration - cycleElapsed
	// Shift both timestamps so elapsed time within the cycle becomes the
	// mirror of what it was, then flip direction.
	delta := now.Add(-timeLeft).Sub(a.cycleStartTime)
	a.cycleStartTime = a.cycleStartTime.Add(delta)
	a.startTime = a.startTime.Add(delta)
	a.currentDirection = a.currentDirection.Opposite()
	a.mu.Unlock()

	a.config.Source.Submit(func() {
		for _, t := range a.targets.snapshot() {
			t.Reverse(a)
		}
	})
	return true
}

// Await blocks until the animation completes, either on its own or due to
// a call to [Animator.Stop] or [Animator.Cancel]. If the animation is not
// running it returns immediately.
func (a *Animator) Await() {
	_ = a.AwaitContext(context.Background())
}

// AwaitContext is like [Animator.Await] but aborts the wait when ctx is
// cancelled, returning ctx.Err(). An aborted wait says nothing about the
// run: the completion signal is not consumed, and a later call can still
// observe it if the run is still in progress.
func (a *Animator) AwaitContext(ctx context.Context) error {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return nil
	}
	done := a.done
	a.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CycleElapsedTime returns the time elapsed between the start of the
// current cycle and now.
func (a *Animator) CycleElapsedTime() time.Duration {
	return a.CycleElapsedTimeAt(Now())
}

// CycleElapsedTimeAt returns the time elapsed between the start of the
// current cycle and the passed time.
func (a *Animator) CycleElapsedTimeAt(now time.Time) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return now.Sub(a.cycleStartTime)
}

// TotalElapsedTime returns the time elapsed between the start of the
// animation and now.
func (a *Animator) TotalElapsedTime() time.Duration {
	return a.TotalElapsedTimeAt(Now())
}

// TotalElapsedTimeAt returns the time elapsed between the start of the
// animation and the passed time.
func (a *Animator) TotalElapsedTimeAt(now time.Time) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return now.Sub(a.startTime)
}

// Tick implements [TickListener]. It is invoked by the timing source and
// is not intended for use by client code.
func (a *Animator) Tick(now time.Time) {
	if a.IsRunning() {
		a.tickNotify(now)
	}
}

// tickNotify computes the tick's results under the lock, then releases
// the lock and notifies targets: repeat first if a cycle boundary was
// crossed, then the timing event, then the stop path if the run is over.
func (a *Animator) tickNotify(now time.Time) {
	a.mu.Lock()
	fraction := a.calcFractionLocked(now)
	timeToStop := a.timeToStop
	notifyRepeat := a.tellAboutRepeat
	a.tellAboutRepeat = false
	a.mu.Unlock()

	targets := a.targets.snapshot()
	if notifyRepeat {
		for _, t := range targets {
			t.Repeat(a)
		}
	}
	for _, t := range targets {
		t.TimingEvent(a, fraction)
	}
	if timeToStop {
		a.stop(true, true)
	}
}

// calcFractionLocked derives the interpolated fraction for the current
// tick and updates cycle bookkeeping. mu must be held.
func (a *Animator) calcFractionLocked(now time.Time) float64 {
	cycleElapsed := now.Sub(a.cycleStartTime)
	totalElapsed := now.Sub(a.startTime)
	duration := a.config.Duration
	cycleIndex := int64(totalElapsed / duration)

	var fraction float64
	switch {
	case a.config.RepeatCount != Infinite && cycleIndex >= a.config.RepeatCount:
		// Repeats exhausted: settle on the configured end behavior.
		switch a.config.EndBehavior {
		case EndHold:
			if a.currentDirection == Backward {
				fraction = 0
			} else {
				fraction = 1
			}
		case EndReset:
			fraction = 0
		default:
			// Unreachable for configurations accepted by New.
			panic(&errors.ConfigError{
				Field:  "EndBehavior",
				Value:  a.config.EndBehavior,
				Reason: "unrecognized value reached at end of animation",
			})
		}
		a.timeToStop = true

	case cycleElapsed > duration:
		// Tick granularity overshot a cycle boundary: start the next
		// cycle phase-accurately from the overflow.
		overflow := cycleElapsed % duration
		fraction = float64(overflow) / float64(duration)
		a.cycleStartTime = now.Add(-overflow)
		if a.config.RepeatBehavior == RepeatReverse {
			a.currentDirection = a.currentDirection.Opposite()
		}
		if a.currentDirection == Backward {
			fraction = 1 - fraction
		}
		a.tellAboutRepeat = true

	default:
		fraction = float64(cycleElapsed) / float64(duration)
		if a.currentDirection == Backward {
			fraction = 1 - fraction
		}
		// Clamp to absorb timer jitter.
		fraction = min(max(fraction, 0), 1)
	}

	if a.config.Interpolator != nil {
		return a.config.Interpolator(fraction)
	}
	return fraction
}
