package leap

import (
	"encoding/json"
	"testing"
)

// sampleFrameJSON is a trimmed tracking-service frame message: one hand,
// three extended fingers, and a completed key tap.
const sampleFrameJSON = `{
	"id": 1211884,
	"timestamp": 13852437291,
	"hands": [
		{"id": 33, "palmPosition": [12.5, 180.0, -38.2], "confidence": 0.97}
	],
	"pointables": [
		{"id": 330, "handId": 33, "extended": true, "tool": false},
		{"id": 331, "handId": 33, "extended": true, "tool": false},
		{"id": 332, "handId": 33, "extended": true, "tool": false},
		{"id": 333, "handId": 33, "extended": false, "tool": false},
		{"id": 334, "handId": 99, "extended": true, "tool": false},
		{"id": 335, "handId": 33, "extended": true, "tool": true}
	],
	"gestures": [
		{"id": 2, "type": "keyTap", "state": "stop", "position": [10.0, 170.0, -40.0]}
	]
}`

func TestFrameMessage_Decode(t *testing.T) {
	var msg frameMessage
	if err := json.Unmarshal([]byte(sampleFrameJSON), &msg); err != nil {
		t.Fatalf("failed to decode frame message: %v", err)
	}

	frame := msg.frame()
	if frame.ID != 1211884 {
		t.Errorf("frame ID = %d, want 1211884", frame.ID)
	}
	if frame.Timestamp != 13852437291 {
		t.Errorf("frame timestamp = %d, want 13852437291", frame.Timestamp)
	}
	if len(frame.Hands) != 1 {
		t.Fatalf("frame has %d hands, want 1", len(frame.Hands))
	}

	hand := frame.Hands[0]
	if hand.PalmPosition != (Vector{X: 12.5, Y: 180.0, Z: -38.2}) {
		t.Errorf("palm position = %+v", hand.PalmPosition)
	}

	// Three extended non-tool pointables belong to hand 33: the bent
	// finger, the other hand's finger, and the tool do not count.
	if hand.FingerCount != 3 {
		t.Errorf("finger count = %d, want 3", hand.FingerCount)
	}
}

func TestFrameMessage_Gestures(t *testing.T) {
	var msg frameMessage
	if err := json.Unmarshal([]byte(sampleFrameJSON), &msg); err != nil {
		t.Fatalf("failed to decode frame message: %v", err)
	}

	events := msg.gestures()
	if len(events) != 1 {
		t.Fatalf("got %d gesture events, want 1", len(events))
	}

	ev := events[0]
	if ev.Kind != GestureKeyTap {
		t.Errorf("gesture kind = %q, want %q", ev.Kind, GestureKeyTap)
	}
	if ev.State != GestureStop {
		t.Errorf("gesture state = %q, want %q", ev.State, GestureStop)
	}
	if ev.Timestamp != 13852437291 {
		t.Errorf("gesture timestamp = %d, want the frame timestamp", ev.Timestamp)
	}
	if ev.FingerCount != 3 {
		t.Errorf("gesture finger count = %d, want 3", ev.FingerCount)
	}
}

func TestVector_UnmarshalRejectsWrongShape(t *testing.T) {
	var v Vector
	if err := json.Unmarshal([]byte(`{"x": 1}`), &v); err == nil {
		t.Error("object-shaped vector decoded without error")
	}
}

func TestFrame_PrimaryHand(t *testing.T) {
	empty := Frame{ID: 1}
	if _, ok := empty.PrimaryHand(); ok {
		t.Error("empty frame reported a primary hand")
	}
	if empty.HasHand() {
		t.Error("empty frame reported HasHand")
	}

	frame := Frame{Hands: []Hand{{ID: 7}, {ID: 8}}}
	hand, ok := frame.PrimaryHand()
	if !ok || hand.ID != 7 {
		t.Errorf("PrimaryHand = (%+v, %v), want hand 7", hand, ok)
	}
}
