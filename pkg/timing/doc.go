// Package timing drives time-based animations.
//
// # Core Components
//
//   - [Animator]: the timing engine. Given periodic ticks from a
//     [TimingSource], it computes a progress fraction within a repeating
//     cycle and dispatches lifecycle notifications (begin, repeat,
//     reverse, timing event, end) to registered [TimingTarget] observers.
//
//   - [Config]: the immutable parameter bundle for an animator (cycle
//     duration, repeat count and behavior, end behavior, start direction,
//     optional [Interpolator]).
//
//   - [TimingSource]: the external tick provider. [TickerSource] is the
//     production source over a time.Ticker; [ManualSource] is the
//     caller-driven source for tests and frame-driven hosts.
//
// # Concurrency
//
// The animator owns no goroutine. Ticks arrive from the timing source and
// control calls (Start, Stop, Cancel, Pause, Resume, ReverseNow) may
// arrive concurrently from any goroutine; a single mutex guards all
// mutable state. Target callbacks are never invoked while that mutex is
// held, so a callback may reentrantly call back into the animator. All
// callbacks for a given animator are dispatched on the timing source's
// serialized context, never on the goroutine that issued the triggering
// control call.
//
// # Basic Usage
//
//	source := timing.NewTickerSource(16 * time.Millisecond)
//	source.Start()
//	defer source.Stop()
//
//	animator, err := timing.New(timing.Config{
//	    Duration: 300 * time.Millisecond,
//	    Source:   source,
//	})
//	if err != nil {
//	    return err
//	}
//	animator.AddTarget(myTarget)
//	animator.Start()
//	animator.Await()
package timing
