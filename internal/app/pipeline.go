package app

import (
	"log"
	"time"

	"github.com/ayusman/leapmouse/internal/pointer"
)

// runPipeline is the single event loop that consumes the device's frame
// and gesture channels and drives the mouse.
//
// Per frame: map the primary hand through the mapper, smooth, and move
// the cursor. Frames without a hand move nothing and reset the smoother
// so a reappearing hand does not drag the cursor across the screen.
// Per gesture: run the debounce trigger and click.
//
// Everything here is synchronous and non-blocking apart from the channel
// receives; injection failures are logged and the next event retries.
func (a *App) runPipeline(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	settings, gen := a.currentSettings()
	smoother := pointer.NewSmoother(settings.SmoothingFactor)
	trigger := pointer.NewTrigger(settings.Trigger)

	var last pointer.ScreenPoint
	haveLast := false

	// refresh rebuilds the smoothing and debounce state whenever
	// UpdateSettings has swapped in a new generation.
	refresh := func() {
		s, g := a.currentSettings()
		if g == gen {
			return
		}
		settings, gen = s, g
		smoother = pointer.NewSmoother(settings.SmoothingFactor)
		trigger = pointer.NewTrigger(settings.Trigger)
		haveLast = false
		log.Println("pipeline settings updated")
	}

	frames := a.device.Frames()
	gestures := a.device.Gestures()

	for {
		select {
		case <-stopCh:
			return

		case frame, ok := <-frames:
			if !ok {
				log.Println("frame stream ended")
				return
			}
			refresh()
			if !a.IsEnabled() {
				continue
			}

			pt, found := pointer.MapFrame(frame, settings.Mapping)
			if !found {
				smoother.Reset()
				continue
			}
			pt = smoother.Smooth(pt)

			// Identical consecutive positions are not re-injected.
			if haveLast && pt == last {
				continue
			}

			if err := a.mouse.Move(pt.X, pt.Y); err != nil {
				log.Printf("cursor move to (%d, %d) failed: %v", pt.X, pt.Y, err)
				continue
			}
			last = pt
			haveLast = true

			if a.verbose {
				hand, _ := frame.PrimaryHand()
				log.Printf("%10.3f: palm (%+6.1f, %+6.1f, %+6.1f)mm -> (%d, %d)",
					float64(frame.Timestamp)/1e6,
					hand.PalmPosition.X, hand.PalmPosition.Y, hand.PalmPosition.Z,
					pt.X, pt.Y)
			}

		case ev, ok := <-gestures:
			if !ok {
				log.Println("gesture stream ended")
				return
			}
			refresh()
			if !a.IsEnabled() {
				continue
			}

			cmd, fire := trigger.Observe(ev)
			if !fire {
				continue
			}

			if err := a.mouse.Click(cmd.Button); err != nil {
				log.Printf("%s click failed: %v", cmd.Button, err)
				continue
			}
			log.Printf("%s click (%s at %s)", cmd.Button, cmd.Kind,
				time.Duration(cmd.Timestamp)*time.Microsecond)
		}
	}
}
