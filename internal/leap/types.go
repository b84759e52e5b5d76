// Package leap provides access to a Leap Motion style hand-tracking service.
package leap

import (
	"encoding/json"
	"fmt"
)

// Vector is a position in sensor space, measured in millimetres from the
// device origin. The tracking service encodes vectors as three-element
// JSON arrays.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// UnmarshalJSON decodes a vector from the wire format [x, y, z].
func (v *Vector) UnmarshalJSON(data []byte) error {
	var a [3]float64
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("vector must be a 3-element array: %w", err)
	}
	v.X, v.Y, v.Z = a[0], a[1], a[2]
	return nil
}

// MarshalJSON encodes a vector as [x, y, z].
func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

// Hand is one tracked hand within a frame.
type Hand struct {
	ID           int     `json:"id"`
	PalmPosition Vector  `json:"palmPosition"`
	Confidence   float64 `json:"confidence"`

	// FingerCount is the number of extended fingers attributed to this
	// hand. It is derived from the frame's pointable list, not sent by
	// the service as a hand field.
	FingerCount int `json:"-"`
}

// Frame is one sampled snapshot of hand tracking data.
// Frames are ephemeral: produced per delivery, consumed, and discarded.
type Frame struct {
	ID        int64  `json:"id"`
	Timestamp int64  `json:"timestamp"` // microseconds since service start
	Hands     []Hand `json:"hands"`
}

// HasHand reports whether the frame carries at least one tracked hand.
func (f *Frame) HasHand() bool {
	return len(f.Hands) > 0
}

// PrimaryHand returns the first tracked hand, matching the service's
// ordering. The boolean is false when no hand is present.
func (f *Frame) PrimaryHand() (Hand, bool) {
	if len(f.Hands) == 0 {
		return Hand{}, false
	}
	return f.Hands[0], true
}

// GestureState is the lifecycle phase of a gesture as reported by the
// tracking service. A single physical gesture is delivered as a start,
// zero or more updates, and a stop.
type GestureState string

const (
	GestureStart  GestureState = "start"
	GestureUpdate GestureState = "update"
	GestureStop   GestureState = "stop"
)

// Gesture kinds reported by the tracking service.
const (
	GestureKeyTap    = "keyTap"
	GestureScreenTap = "screenTap"
)

// GestureEvent is one discrete gesture report.
type GestureEvent struct {
	ID       int          `json:"id"`
	Kind     string       `json:"type"`
	State    GestureState `json:"state"`
	Position Vector       `json:"position"`

	// Timestamp is inherited from the frame that carried the gesture,
	// in microseconds since service start.
	Timestamp int64 `json:"-"`

	// FingerCount is the extended-finger count of the gesturing hand
	// at the time of the event, derived the same way as Hand.FingerCount.
	FingerCount int `json:"-"`
}

// frameMessage is the wire shape of one tracking frame, including the
// pointable and gesture lists that are folded into Frame and GestureEvent.
type frameMessage struct {
	ID         int64          `json:"id"`
	Timestamp  int64          `json:"timestamp"`
	Hands      []Hand         `json:"hands"`
	Pointables []pointable    `json:"pointables"`
	Gestures   []GestureEvent `json:"gestures"`
}

// pointable is a finger or tool entry in a frame message. Only the hand
// association and extension state are needed to derive finger counts.
type pointable struct {
	ID       int  `json:"id"`
	HandID   int  `json:"handId"`
	Extended bool `json:"extended"`
	Tool     bool `json:"tool"`
}

// frame assembles a Frame from the wire message, attributing extended
// finger counts to their hands.
func (m *frameMessage) frame() Frame {
	f := Frame{
		ID:        m.ID,
		Timestamp: m.Timestamp,
		Hands:     m.Hands,
	}
	for i := range f.Hands {
		f.Hands[i].FingerCount = m.fingerCount(f.Hands[i].ID)
	}
	return f
}

// gestures assembles the frame's gesture events, stamping each with the
// frame timestamp and the gesturing hand's finger count.
func (m *frameMessage) gestures() []GestureEvent {
	if len(m.Gestures) == 0 {
		return nil
	}
	events := make([]GestureEvent, len(m.Gestures))
	copy(events, m.Gestures)
	fingers := 0
	if len(m.Hands) > 0 {
		fingers = m.fingerCount(m.Hands[0].ID)
	}
	for i := range events {
		events[i].Timestamp = m.Timestamp
		events[i].FingerCount = fingers
	}
	return events
}

// fingerCount counts extended, non-tool pointables belonging to a hand.
func (m *frameMessage) fingerCount(handID int) int {
	n := 0
	for _, p := range m.Pointables {
		if p.HandID == handID && p.Extended && !p.Tool {
			n++
		}
	}
	return n
}
