// Package mouse wraps OS-level cursor control behind a small interface
// so the pipeline can be tested without injecting real input events.
package mouse

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Mouse defines the consumed interface to the desktop cursor.
type Mouse interface {
	// Move places the cursor at the absolute pixel position (x, y).
	Move(x, y int) error

	// Click performs a click of the named button ("left", "right",
	// "center") at the current cursor position.
	Click(button string) error

	// ScreenSize returns the primary display's size in pixels.
	ScreenSize() (width, height int)
}

// systemMouse injects events through robotgo.
type systemMouse struct{}

// NewSystemMouse returns a Mouse backed by the operating system's input
// injection facilities.
func NewSystemMouse() Mouse {
	return systemMouse{}
}

func (systemMouse) Move(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

func (systemMouse) Click(button string) error {
	switch button {
	case "left", "right", "center":
	default:
		return fmt.Errorf("unknown mouse button %q", button)
	}
	robotgo.Click(button, false)
	return nil
}

func (systemMouse) ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}
