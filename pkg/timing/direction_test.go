package timing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/tempo/pkg/timing"
)

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, timing.Backward, timing.Forward.Opposite())
	assert.Equal(t, timing.Forward, timing.Backward.Opposite())
}

func TestEnums_String(t *testing.T) {
	assert.Equal(t, "forward", timing.Forward.String())
	assert.Equal(t, "backward", timing.Backward.String())
	assert.Equal(t, "hold", timing.EndHold.String())
	assert.Equal(t, "reset", timing.EndReset.String())
	assert.Equal(t, "loop", timing.RepeatLoop.String())
	assert.Equal(t, "reverse", timing.RepeatReverse.String())

	assert.Equal(t, "Direction(9)", timing.Direction(9).String())
	assert.Equal(t, "EndBehavior(9)", timing.EndBehavior(9).String())
	assert.Equal(t, "RepeatBehavior(9)", timing.RepeatBehavior(9).String())
}
