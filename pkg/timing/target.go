package timing

// TimingTarget receives lifecycle notifications from an Animator. All
// callbacks for a given animator are invoked on the timing source's
// dispatch context, never on the goroutine that issued the triggering
// control call.
//
// Embed [TargetAdapter] to implement only the callbacks you need.
type TimingTarget interface {
	// Begin is called when the animation starts.
	Begin(a *Animator)

	// TimingEvent is called on every tick with the current fraction, in
	// [0, 1], after interpolation.
	TimingEvent(a *Animator, fraction float64)

	// Repeat is called when a cycle boundary is crossed and another cycle
	// begins.
	Repeat(a *Animator)

	// Reverse is called when the animation's direction is flipped via
	// [Animator.ReverseNow].
	Reverse(a *Animator)

	// End is called exactly once when the run ends, whether it completed
	// naturally or was stopped. It is not called for a cancelled run.
	End(a *Animator)
}

// TargetAdapter is a no-op TimingTarget. Embed it in a target
// implementation to avoid writing callbacks you do not care about:
//
//	type fadeIn struct {
//	    timing.TargetAdapter
//	}
//
//	func (f *fadeIn) TimingEvent(a *timing.Animator, fraction float64) {
//	    // only timing events are handled
//	}
type TargetAdapter struct{}

// Begin implements TimingTarget.
func (TargetAdapter) Begin(*Animator) {}

// TimingEvent implements TimingTarget.
func (TargetAdapter) TimingEvent(*Animator, float64) {}

// Repeat implements TimingTarget.
func (TargetAdapter) Repeat(*Animator) {}

// Reverse implements TimingTarget.
func (TargetAdapter) Reverse(*Animator) {}

// End implements TimingTarget.
func (TargetAdapter) End(*Animator) {}
