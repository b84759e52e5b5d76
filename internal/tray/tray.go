// Package tray provides an optional system tray toggle for pausing and
// resuming pointer control.
package tray

import (
	"log"
	"sync"

	"github.com/getlantern/systray"
	"github.com/pkg/browser"
)

// Tray is the system tray menu. Because the cursor is driven by the
// user's hand, the tray is the escape hatch for taking the mouse back
// without unplugging the sensor.
type Tray struct {
	configPath string

	mu       sync.RWMutex
	onToggle func(enabled bool)
	onQuit   func()
	enabled  bool

	menuToggle *systray.MenuItem
}

// New creates a Tray. configPath is the file opened by the
// "Open Config..." item; empty hides that item.
func New(configPath string) *Tray {
	return &Tray{
		configPath: configPath,
		enabled:    true,
	}
}

// OnToggle sets the callback invoked when tracking is paused or resumed.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnQuit sets the callback invoked when the quit item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the tray loop. It blocks until Quit is called and must run
// on the main goroutine on platforms that require it.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit tears the tray down, unblocking Run.
func (t *Tray) Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	systray.SetTitle("LeapMouse")
	systray.SetTooltip("LeapMouse hand pointer control")

	t.menuToggle = systray.AddMenuItem("● Tracking", "Pause or resume pointer control")
	systray.AddSeparator()

	var menuConfig *systray.MenuItem
	if t.configPath != "" {
		menuConfig = systray.AddMenuItem("Open Config...", "Open the configuration file")
		systray.AddSeparator()
	}

	menuQuit := systray.AddMenuItem("Quit", "Quit LeapMouse")

	go func() {
		var configCh chan struct{} // nil when there is no config item
		if menuConfig != nil {
			configCh = menuConfig.ClickedCh
		}
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-configCh:
				if err := browser.OpenFile(t.configPath); err != nil {
					log.Printf("failed to open config: %v", err)
				}
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {}

func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Tracking")
	} else {
		t.menuToggle.SetTitle("○ Paused")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Run the callback outside the lock to avoid deadlocks.
	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// IsEnabled returns the current toggle state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
