package timing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/tempo/pkg/errors"
	"github.com/go-drift/tempo/pkg/timing"
)

func TestNew_Valid(t *testing.T) {
	a, err := timing.New(timing.Config{
		Duration: time.Second,
		Source:   timing.NewManualSource(),
	})
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.Equal(t, time.Second, a.Duration())
	assert.Equal(t, timing.EndHold, a.EndBehavior())
	assert.Equal(t, timing.RepeatLoop, a.RepeatBehavior())
	assert.Equal(t, int64(1), a.RepeatCount(), "zero repeat count defaults to one cycle")
	assert.Equal(t, timing.Forward, a.StartDirection())
	assert.False(t, a.IsRunning())
	assert.False(t, a.IsPaused())
}

func TestNew_Invalid(t *testing.T) {
	source := timing.NewManualSource()

	tests := []struct {
		name  string
		cfg   timing.Config
		field string
	}{
		{
			name:  "zero duration",
			cfg:   timing.Config{Source: source},
			field: "Duration",
		},
		{
			name:  "negative duration",
			cfg:   timing.Config{Duration: -time.Second, Source: source},
			field: "Duration",
		},
		{
			name:  "negative repeat count",
			cfg:   timing.Config{Duration: time.Second, RepeatCount: -7, Source: source},
			field: "RepeatCount",
		},
		{
			name:  "nil source",
			cfg:   timing.Config{Duration: time.Second},
			field: "Source",
		},
		{
			name:  "garbage end behavior",
			cfg:   timing.Config{Duration: time.Second, EndBehavior: timing.EndBehavior(42), Source: source},
			field: "EndBehavior",
		},
		{
			name:  "garbage repeat behavior",
			cfg:   timing.Config{Duration: time.Second, RepeatBehavior: timing.RepeatBehavior(42), Source: source},
			field: "RepeatBehavior",
		},
		{
			name:  "garbage start direction",
			cfg:   timing.Config{Duration: time.Second, StartDirection: timing.Direction(42), Source: source},
			field: "StartDirection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := timing.New(tt.cfg)
			assert.Nil(t, a)
			var cfgErr *errors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNew_InfiniteRepeatCount(t *testing.T) {
	a, err := timing.New(timing.Config{
		Duration:    time.Second,
		RepeatCount: timing.Infinite,
		Source:      timing.NewManualSource(),
	})
	require.NoError(t, err)
	assert.Equal(t, timing.Infinite, a.RepeatCount())
}
