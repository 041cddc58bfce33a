package timing

import (
	"time"

	"github.com/go-drift/tempo/pkg/errors"
)

// Interpolator maps a linear fraction in [0, 1] to an eased fraction in
// [0, 1]. Implementations must be pure: same input, same output, no side
// effects. A nil Interpolator means identity (linear progress).
type Interpolator func(fraction float64) float64

// Config bundles the immutable parameters of an [Animator]. It is
// supplied once to [New] and owned by the animator for its whole
// lifetime; the zero value of every optional field is a usable default.
type Config struct {
	// Duration is the length of one cycle. It must be positive.
	Duration time.Duration

	// EndBehavior controls the final fraction when repeats are exhausted.
	// The default is EndHold.
	EndBehavior EndBehavior

	// RepeatBehavior controls how successive cycles flow. The default is
	// RepeatLoop.
	RepeatBehavior RepeatBehavior

	// RepeatCount is the number of cycles to run: a positive integer or
	// Infinite. Zero means one cycle.
	RepeatCount int64

	// StartDirection is the direction of the initial cycle. The default
	// is Forward.
	StartDirection Direction

	// Interpolator eases the linear fraction. Nil means identity.
	Interpolator Interpolator

	// Source delivers ticks and serializes notifications. Required.
	Source TimingSource
}

// validate checks the construction-time contract. The animator's state
// machine itself never re-validates configuration at runtime.
func (c Config) validate() error {
	if c.Duration < time.Nanosecond {
		return &errors.ConfigError{Field: "Duration", Value: c.Duration, Reason: "must be positive"}
	}
	if c.RepeatCount != Infinite && c.RepeatCount < 1 {
		return &errors.ConfigError{Field: "RepeatCount", Value: c.RepeatCount, Reason: "must be >= 1 or Infinite"}
	}
	switch c.EndBehavior {
	case EndHold, EndReset:
	default:
		return &errors.ConfigError{Field: "EndBehavior", Value: c.EndBehavior, Reason: "unrecognized value"}
	}
	switch c.RepeatBehavior {
	case RepeatLoop, RepeatReverse:
	default:
		return &errors.ConfigError{Field: "RepeatBehavior", Value: c.RepeatBehavior, Reason: "unrecognized value"}
	}
	switch c.StartDirection {
	case Forward, Backward:
	default:
		return &errors.ConfigError{Field: "StartDirection", Value: c.StartDirection, Reason: "unrecognized value"}
	}
	if c.Source == nil {
		return &errors.ConfigError{Field: "Source", Value: nil, Reason: "a timing source is required"}
	}
	return nil
}
