// Package testing provides test doubles for the tempo timing library.
//
// Import it with an alias to avoid clashing with the standard library:
//
//	import tempotest "github.com/go-drift/tempo/pkg/testing"
//
// # Quick Start
//
// Install a fake clock, drive a manual source, and record what a target
// observes:
//
//	func TestFade(t *testing.T) {
//	    clk := tempotest.InstallFakeClock(t)
//	    source := timing.NewManualSource()
//
//	    animator, err := timing.New(timing.Config{
//	        Duration: time.Second,
//	        Source:   source,
//	    })
//	    require.NoError(t, err)
//
//	    rec := &tempotest.RecordingTarget{}
//	    animator.AddTarget(rec)
//	    animator.Start()
//
//	    clk.Advance(500 * time.Millisecond)
//	    source.Tick()
//
//	    require.InDelta(t, 0.5, rec.LastFraction(), 0.001)
//	}
package testing
