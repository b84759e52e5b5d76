package leap

import (
	"context"
	"sync"
)

// MockDevice is a test implementation of the Device interface. It plays
// back a scripted sequence of frames and gestures in order.
type MockDevice struct {
	mu       sync.Mutex
	running  bool
	frames   chan Frame
	gestures chan GestureEvent

	connectErr error
	script     []any // Frame or GestureEvent, delivered in order
}

// NewMockDevice creates a MockDevice with an empty script.
func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

// SetConnectError sets the error that Connect will return.
func (m *MockDevice) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectErr = err
}

// AddFrame appends a frame to the playback script.
func (m *MockDevice) AddFrame(f Frame) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, f)
}

// AddGesture appends a gesture event to the playback script.
func (m *MockDevice) AddGesture(ev GestureEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, ev)
}

// Connect starts playback. The scripted events are delivered on the
// frame and gesture channels, which stay open until Close so tests can
// keep the pipeline running after the script drains.
func (m *MockDevice) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connectErr != nil {
		return m.connectErr
	}
	if m.running {
		return nil
	}

	m.running = true
	m.frames = make(chan Frame, len(m.script)+16)
	m.gestures = make(chan GestureEvent, len(m.script)+16)

	for _, item := range m.script {
		switch v := item.(type) {
		case Frame:
			m.frames <- v
		case GestureEvent:
			m.gestures <- v
		}
	}

	return nil
}

// Frames returns the frame channel. It is nil before Connect.
func (m *MockDevice) Frames() <-chan Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Gestures returns the gesture channel. It is nil before Connect.
func (m *MockDevice) Gestures() <-chan GestureEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gestures
}

// EmitFrame delivers a frame to a connected device outside the script,
// letting tests drive the pipeline while it is running.
func (m *MockDevice) EmitFrame(f Frame) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		m.frames <- f
	}
}

// EmitGesture delivers a gesture event to a connected device outside the
// script.
func (m *MockDevice) EmitGesture(ev GestureEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		m.gestures <- ev
	}
}

// Close ends playback and closes both channels.
func (m *MockDevice) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return nil
	}
	m.running = false
	close(m.frames)
	close(m.gestures)
	return nil
}

// OneHandFrame returns a frame holding a single hand at the given palm
// position with the given extended-finger count. Useful as a building
// block for scripted playback.
func OneHandFrame(id int64, ts int64, palm Vector, fingers int) Frame {
	return Frame{
		ID:        id,
		Timestamp: ts,
		Hands: []Hand{{
			ID:           1,
			PalmPosition: palm,
			Confidence:   1.0,
			FingerCount:  fingers,
		}},
	}
}

// KeyTapAt returns a completed key-tap gesture event at the given
// timestamp with the given finger count.
func KeyTapAt(ts int64, fingers int) GestureEvent {
	return GestureEvent{
		ID:          1,
		Kind:        GestureKeyTap,
		State:       GestureStop,
		Timestamp:   ts,
		FingerCount: fingers,
	}
}
