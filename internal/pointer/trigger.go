package pointer

import (
	"time"

	"github.com/ayusman/leapmouse/internal/leap"
)

// Button names understood by the mouse collaborator.
const (
	ButtonLeft  = "left"
	ButtonRight = "right"
)

// ClickCommand is an instruction to perform one mouse click.
type ClickCommand struct {
	Button    string
	Kind      string // the gesture kind that produced the click
	Timestamp int64  // microseconds, inherited from the gesture event
}

// TriggerConfig holds the gesture-to-click policy.
type TriggerConfig struct {
	// DebounceWindow suppresses a second click of the same gesture kind
	// arriving within this window, absorbing duplicate reports of one
	// physical gesture.
	DebounceWindow time.Duration

	// MinFingers ignores taps performed with fewer extended fingers,
	// which filters accidental taps while the hand is pointing. Zero or
	// negative disables the gate.
	MinFingers int

	// Bindings maps gesture kinds to mouse buttons. Nil selects
	// DefaultBindings. Kinds absent from the map are ignored.
	Bindings map[string]string
}

// DefaultBindings maps the tracking service's tap gestures to clicks:
// a key tap is a left click, a screen tap a right click.
func DefaultBindings() map[string]string {
	return map[string]string{
		leap.GestureKeyTap:    ButtonLeft,
		leap.GestureScreenTap: ButtonRight,
	}
}

// Trigger turns a stream of gesture events into debounced click
// commands. It keeps one piece of state: the timestamp of the last
// emitted click per gesture kind. Trigger is not safe for concurrent
// use; the pipeline confines it to a single goroutine.
type Trigger struct {
	cfg      TriggerConfig
	bindings map[string]string
	lastEmit map[string]int64 // gesture kind -> timestamp (µs) of last click
}

// NewTrigger creates a Trigger with the given policy.
func NewTrigger(cfg TriggerConfig) *Trigger {
	bindings := cfg.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Trigger{
		cfg:      cfg,
		bindings: bindings,
		lastEmit: make(map[string]int64),
	}
}

// Observe processes one gesture event. The boolean is true when the
// event should produce a click. Debounce compares event timestamps, not
// wall-clock time, so behaviour is reproducible from a recorded stream.
//
// Only gestures in the stop state count as a physical occurrence; start
// and update reports of the same gesture are ignored. Unrecognized
// kinds are silently ignored.
func (t *Trigger) Observe(ev leap.GestureEvent) (ClickCommand, bool) {
	if ev.State != leap.GestureStop {
		return ClickCommand{}, false
	}

	button, ok := t.bindings[ev.Kind]
	if !ok {
		return ClickCommand{}, false
	}

	if t.cfg.MinFingers > 0 && ev.FingerCount < t.cfg.MinFingers {
		return ClickCommand{}, false
	}

	if last, seen := t.lastEmit[ev.Kind]; seen {
		if ev.Timestamp-last < t.cfg.DebounceWindow.Microseconds() {
			return ClickCommand{}, false
		}
	}

	t.lastEmit[ev.Kind] = ev.Timestamp
	return ClickCommand{
		Button:    button,
		Kind:      ev.Kind,
		Timestamp: ev.Timestamp,
	}, true
}
