package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/tempo/pkg/timing"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeScenario(t, `
tickInterval: 5ms
animations:
  - name: fade
    duration: 1s
  - name: pulse
    duration: 500ms
    repeat: 4
    repeatBehavior: reverse
    endBehavior: reset
    direction: backward
`)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Duration(5*time.Millisecond), f.TickInterval)
	require.Len(t, f.Animations, 2)

	source := timing.NewManualSource()
	cfg, err := f.Animations[1].Config(source)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Duration)
	assert.Equal(t, int64(4), cfg.RepeatCount)
	assert.Equal(t, timing.RepeatReverse, cfg.RepeatBehavior)
	assert.Equal(t, timing.EndReset, cfg.EndBehavior)
	assert.Equal(t, timing.Backward, cfg.StartDirection)
	assert.Same(t, source, cfg.Source)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeScenario(t, `
animations:
  - duration: 250ms
`)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Duration(16*time.Millisecond), f.TickInterval)
	assert.Equal(t, "animation-1", f.Animations[0].Name)

	cfg, err := f.Animations[0].Config(timing.NewManualSource())
	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.RepeatCount)
	assert.Equal(t, timing.RepeatLoop, cfg.RepeatBehavior)
	assert.Equal(t, timing.EndHold, cfg.EndBehavior)
	assert.Equal(t, timing.Forward, cfg.StartDirection)
}

func TestLoad_InfiniteRepeat(t *testing.T) {
	path := writeScenario(t, `
animations:
  - duration: 250ms
    repeat: -1
`)

	f, err := Load(path)
	require.NoError(t, err)

	cfg, err := f.Animations[0].Config(timing.NewManualSource())
	require.NoError(t, err)
	assert.Equal(t, timing.Infinite, cfg.RepeatCount)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty",
			content: "animations: []",
			wantErr: "no animations",
		},
		{
			name: "missing duration",
			content: `
animations:
  - name: broken
`,
			wantErr: "duration must be positive",
		},
		{
			name: "bad duration",
			content: `
animations:
  - duration: quickly
`,
			wantErr: "invalid duration",
		},
		{
			name: "bad repeat behavior",
			content: `
animations:
  - duration: 1s
    repeatBehavior: bounce
`,
			wantErr: "unknown repeatBehavior",
		},
		{
			name: "bad end behavior",
			content: `
animations:
  - duration: 1s
    endBehavior: explode
`,
			wantErr: "unknown endBehavior",
		},
		{
			name: "bad direction",
			content: `
animations:
  - duration: 1s
    direction: sideways
`,
			wantErr: "unknown direction",
		},
		{
			name: "bad repeat count",
			content: `
animations:
  - duration: 1s
    repeat: -3
`,
			wantErr: "repeat must be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario")
}
