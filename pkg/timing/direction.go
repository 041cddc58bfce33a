package timing

import "fmt"

// Direction is the direction a cycle is moving in: Forward runs the
// fraction from 0 toward 1, Backward from 1 toward 0.
type Direction int

const (
	// Forward means the cycle proceeds from fraction 0 to 1.
	Forward Direction = iota
	// Backward means the cycle proceeds from fraction 1 to 0.
	Backward
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// EndBehavior determines the final fraction reported when an animation's
// repeats are exhausted.
type EndBehavior int

const (
	// EndHold freezes the fraction at the last reached edge: 1 when the
	// final cycle ran forward, 0 when it ran backward.
	EndHold EndBehavior = iota
	// EndReset snaps the fraction back to 0.
	EndReset
)

// String returns a human-readable representation of the end behavior.
func (b EndBehavior) String() string {
	switch b {
	case EndHold:
		return "hold"
	case EndReset:
		return "reset"
	default:
		return fmt.Sprintf("EndBehavior(%d)", int(b))
	}
}

// RepeatBehavior determines how each successive cycle flows.
type RepeatBehavior int

const (
	// RepeatLoop runs each repeated cycle in the same direction as the
	// previous one.
	RepeatLoop RepeatBehavior = iota
	// RepeatReverse runs each repeated cycle in the opposite direction of
	// the previous one.
	RepeatReverse
)

// String returns a human-readable representation of the repeat behavior.
func (b RepeatBehavior) String() string {
	switch b {
	case RepeatLoop:
		return "loop"
	case RepeatReverse:
		return "reverse"
	default:
		return fmt.Sprintf("RepeatBehavior(%d)", int(b))
	}
}

// Infinite is the repeat count sentinel for animations that repeat until
// explicitly stopped. Only the repeat count may be Infinite; a duration
// may not.
const Infinite int64 = -1
