// Package scenario loads animation scenario files for the tempo CLI.
//
// A scenario is a YAML document describing one or more animations to run:
//
//	tickInterval: 16ms
//	animations:
//	  - name: fade
//	    duration: 1s
//	  - name: pulse
//	    duration: 500ms
//	    repeat: 4
//	    repeatBehavior: reverse
//	    endBehavior: reset
//	    direction: backward
package scenario

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tempo/pkg/timing"
)

// Duration wraps time.Duration so it unmarshals from strings like "500ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// File is the root of a scenario document.
type File struct {
	// TickInterval is the timing source interval. Defaults to 16ms.
	TickInterval Duration `yaml:"tickInterval,omitempty"`
	// Animations are run in order.
	Animations []Animation `yaml:"animations"`
}

// Animation describes one animation to run.
type Animation struct {
	Name           string   `yaml:"name"`
	Duration       Duration `yaml:"duration"`
	Repeat         int64    `yaml:"repeat,omitempty"`         // 0 = once, -1 = infinite
	RepeatBehavior string   `yaml:"repeatBehavior,omitempty"` // loop | reverse
	EndBehavior    string   `yaml:"endBehavior,omitempty"`    // hold | reset
	Direction      string   `yaml:"direction,omitempty"`      // forward | backward
}

// Load reads and validates a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if f.TickInterval == 0 {
		f.TickInterval = Duration(16 * time.Millisecond)
	}
	if len(f.Animations) == 0 {
		return nil, fmt.Errorf("scenario has no animations")
	}
	for i := range f.Animations {
		if f.Animations[i].Name == "" {
			f.Animations[i].Name = fmt.Sprintf("animation-%d", i+1)
		}
		if _, err := f.Animations[i].Config(nil); err != nil {
			return nil, fmt.Errorf("animation %q: %w", f.Animations[i].Name, err)
		}
	}
	return &f, nil
}

// Config translates the animation description into a timing.Config bound
// to the given source. Passing a nil source validates the description
// without binding it.
func (a Animation) Config(source timing.TimingSource) (timing.Config, error) {
	if a.Duration <= 0 {
		return timing.Config{}, fmt.Errorf("duration must be positive")
	}

	repeatBehavior := timing.RepeatLoop
	switch a.RepeatBehavior {
	case "", "loop":
	case "reverse":
		repeatBehavior = timing.RepeatReverse
	default:
		return timing.Config{}, fmt.Errorf("unknown repeatBehavior %q", a.RepeatBehavior)
	}

	endBehavior := timing.EndHold
	switch a.EndBehavior {
	case "", "hold":
	case "reset":
		endBehavior = timing.EndReset
	default:
		return timing.Config{}, fmt.Errorf("unknown endBehavior %q", a.EndBehavior)
	}

	direction := timing.Forward
	switch a.Direction {
	case "", "forward":
	case "backward":
		direction = timing.Backward
	default:
		return timing.Config{}, fmt.Errorf("unknown direction %q", a.Direction)
	}

	repeat := a.Repeat
	if repeat == 0 {
		repeat = 1
	}
	if repeat != timing.Infinite && repeat < 1 {
		return timing.Config{}, fmt.Errorf("repeat must be >= 1 or -1 for infinite")
	}

	return timing.Config{
		Duration:       time.Duration(a.Duration),
		RepeatCount:    repeat,
		RepeatBehavior: repeatBehavior,
		EndBehavior:    endBehavior,
		StartDirection: direction,
		Source:         source,
	}, nil
}
