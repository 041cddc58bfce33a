package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/tempo/cmd/tempo/internal/scenario"
	"github.com/go-drift/tempo/pkg/timing"
)

var runVerbose bool

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run the animations described in a scenario file",
	Long: `Run loads a YAML scenario file and runs its animations in order on a
shared ticker source, printing lifecycle events as they happen. Press
Ctrl-C to stop the current animation early.

Example scenario:

  tickInterval: 16ms
  animations:
    - name: fade
      duration: 1s
    - name: pulse
      duration: 500ms
      repeat: 4
      repeatBehavior: reverse`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenario(args[0])
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "print every timing event, not just lifecycle changes")
}

func runScenario(path string) error {
	file, err := scenario.Load(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := timing.NewTickerSource(time.Duration(file.TickInterval))
	source.Start()
	defer source.Stop()

	for _, anim := range file.Animations {
		if ctx.Err() != nil {
			break
		}
		if err := runAnimation(ctx, source, anim); err != nil {
			return err
		}
	}
	return nil
}

func runAnimation(ctx context.Context, source timing.TimingSource, anim scenario.Animation) error {
	cfg, err := anim.Config(source)
	if err != nil {
		return fmt.Errorf("animation %q: %w", anim.Name, err)
	}
	animator, err := timing.New(cfg)
	if err != nil {
		return fmt.Errorf("animation %q: %w", anim.Name, err)
	}
	animator.AddTarget(&consoleTarget{name: anim.Name, verbose: runVerbose})

	fmt.Printf("--- %s: duration=%v repeat=%s repeatBehavior=%v endBehavior=%v direction=%v\n",
		anim.Name, cfg.Duration, repeatString(cfg.RepeatCount),
		cfg.RepeatBehavior, cfg.EndBehavior, cfg.StartDirection)

	animator.Start()
	if err := animator.AwaitContext(ctx); err != nil {
		animator.Stop()
		animator.Await()
		return fmt.Errorf("interrupted")
	}
	return nil
}

func repeatString(count int64) string {
	if count == timing.Infinite {
		return "infinite"
	}
	return fmt.Sprintf("%d", count)
}

// consoleTarget prints lifecycle events for one animation. It runs on
// the ticker source's dispatch goroutine.
type consoleTarget struct {
	name    string
	verbose bool
	started time.Time
	last    float64
}

func (t *consoleTarget) Begin(*timing.Animator) {
	t.started = time.Now()
	t.last = -1
	fmt.Printf("[%s] begin\n", t.name)
}

func (t *consoleTarget) TimingEvent(_ *timing.Animator, fraction float64) {
	if !t.verbose {
		t.last = fraction
		return
	}
	fmt.Printf("[%s] %8s fraction=%.4f\n", t.name, time.Since(t.started).Round(time.Millisecond), fraction)
	t.last = fraction
}

func (t *consoleTarget) Repeat(*timing.Animator) {
	fmt.Printf("[%s] repeat\n", t.name)
}

func (t *consoleTarget) Reverse(*timing.Animator) {
	fmt.Printf("[%s] reverse\n", t.name)
}

func (t *consoleTarget) End(*timing.Animator) {
	fmt.Printf("[%s] end after %v (final fraction %.4f)\n",
		t.name, time.Since(t.started).Round(time.Millisecond), t.last)
}
