package leap

import (
	"context"
	"errors"
)

// ErrDeviceUnavailable is returned when the tracking service cannot be
// reached, typically because the device is not connected or its driver
// daemon is not running.
var ErrDeviceUnavailable = errors.New("tracking service unavailable")

// ErrNotConnected is returned when using a device before Connect or after
// Close.
var ErrNotConnected = errors.New("device is not connected")

// Device defines the interface for hand-tracking device sessions.
//
// A Device owns the connection to the sensor for its lifetime: Connect
// acquires it, Close releases it. Frames and gestures are delivered on
// channels so consumers run an ordinary receive loop instead of
// registering callbacks with the SDK. Both channels are closed when the
// session ends, whether by Close or by a transport failure.
type Device interface {
	// Connect opens the device session. It blocks until the session is
	// established or the context is cancelled.
	Connect(ctx context.Context) error

	// Frames returns the channel of tracking frames.
	Frames() <-chan Frame

	// Gestures returns the channel of discrete gesture events.
	Gestures() <-chan GestureEvent

	// Close ends the session and releases the device. It is safe to call
	// more than once.
	Close() error
}
