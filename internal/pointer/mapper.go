// Package pointer converts hand-tracking data into cursor commands.
//
// The package is pure: it never touches the sensor session or the OS
// cursor. Callers feed it frames and gesture events and act on the
// returned ScreenPoints and ClickCommands, so the delivery adapter stays
// a thin shim.
package pointer

import (
	"fmt"
	"math"

	"github.com/ayusman/leapmouse/internal/leap"
)

// ScreenPoint is a cursor position in pixels. Values produced by this
// package are always within [0, width) x [0, height) of the configured
// screen.
type ScreenPoint struct {
	X int
	Y int
}

// MappingConfig describes how sensor space maps onto the screen: the
// sensor-space rectangle that covers the full screen, the screen size in
// pixels, and optional axis inversion. A MappingConfig is an immutable
// value; build a new one rather than mutating one in use.
//
// The horizontal axis of the sensor drives screen X and the depth axis
// (toward the user) drives screen Y, so moving a hand closer to the body
// pulls the cursor toward the bottom of the screen.
type MappingConfig struct {
	MinX float64 // sensor-space horizontal bounds, millimetres
	MaxX float64
	MinZ float64 // sensor-space depth bounds, millimetres
	MaxZ float64

	ScreenWidth  int
	ScreenHeight int

	InvertX bool
	InvertY bool
}

// Validate reports whether the config describes a usable mapping.
func (c MappingConfig) Validate() error {
	if c.MaxX <= c.MinX {
		return fmt.Errorf("sensor x bounds are empty: [%g, %g]", c.MinX, c.MaxX)
	}
	if c.MaxZ <= c.MinZ {
		return fmt.Errorf("sensor z bounds are empty: [%g, %g]", c.MinZ, c.MaxZ)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}

// MapFrame maps the frame's primary hand onto the screen. The boolean is
// false when the frame carries no hand, in which case the cursor must not
// move.
func MapFrame(frame leap.Frame, cfg MappingConfig) (ScreenPoint, bool) {
	hand, ok := frame.PrimaryHand()
	if !ok {
		return ScreenPoint{}, false
	}
	return MapPosition(hand.PalmPosition, cfg), true
}

// MapPosition linearly rescales a sensor-space position onto the screen
// rectangle. Positions outside the configured sensor rectangle are
// clamped per axis to the rectangle edge before mapping; they never
// produce an error or an off-screen point.
func MapPosition(pos leap.Vector, cfg MappingConfig) ScreenPoint {
	return ScreenPoint{
		X: mapAxis(pos.X, cfg.MinX, cfg.MaxX, cfg.ScreenWidth, cfg.InvertX),
		Y: mapAxis(pos.Z, cfg.MinZ, cfg.MaxZ, cfg.ScreenHeight, cfg.InvertY),
	}
}

// mapAxis rescales one sensor axis onto [0, size). The sensor bounds map
// onto the first and last pixel, with round-to-nearest in between.
func mapAxis(v, min, max float64, size int, invert bool) int {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}

	norm := (v - min) / (max - min)
	if invert {
		norm = 1 - norm
	}

	p := int(math.Round(norm * float64(size-1)))
	if p < 0 {
		p = 0
	}
	if p >= size {
		p = size - 1
	}
	return p
}
