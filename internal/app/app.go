// Package app wires the tracking device, the pointer core, and the mouse
// collaborator into a running session.
package app

import (
	"context"
	"log"
	"sync"

	"github.com/ayusman/leapmouse/internal/leap"
	"github.com/ayusman/leapmouse/internal/mouse"
	"github.com/ayusman/leapmouse/internal/pointer"
)

// Settings is the tunable part of a running session. Each Settings value
// is immutable; UpdateSettings swaps in a whole new value between frames.
type Settings struct {
	Mapping         pointer.MappingConfig
	Trigger         pointer.TriggerConfig
	SmoothingFactor float64
}

// Validate checks the settings before they reach the pipeline.
func (s Settings) Validate() error {
	return s.Mapping.Validate()
}

// Config holds the collaborators and initial settings for an App.
type Config struct {
	Device   leap.Device
	Mouse    mouse.Mouse
	Settings Settings
	Verbose  bool
}

// App owns one device session and the pipeline goroutine that translates
// its events into cursor commands.
type App struct {
	device  leap.Device
	mouse   mouse.Mouse
	verbose bool

	mu          sync.RWMutex
	settings    Settings
	settingsGen uint64
	enabled     bool
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// New creates an App. The initial settings must validate.
func New(cfg Config) (*App, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	return &App{
		device:   cfg.Device,
		mouse:    cfg.Mouse,
		verbose:  cfg.Verbose,
		settings: cfg.Settings,
		enabled:  true,
	}, nil
}

// Start connects the device and launches the pipeline. Calling Start on
// a running App is a no-op.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.device.Connect(ctx); err != nil {
		return err
	}

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runPipeline(a.stopCh, a.doneCh)

	log.Println("pointer control started")
	return nil
}

// Stop ends the session: it signals the pipeline, releases the device,
// and waits for the pipeline to drain. Safe to call more than once.
func (a *App) Stop() {
	a.mu.Lock()
	stopCh := a.stopCh
	doneCh := a.doneCh
	a.stopCh = nil
	a.doneCh = nil
	a.mu.Unlock()

	if stopCh == nil {
		return
	}

	close(stopCh)
	if err := a.device.Close(); err != nil {
		log.Printf("error closing device: %v", err)
	}
	<-doneCh

	log.Println("pointer control stopped")
}

// Done returns a channel closed when the pipeline exits, whether from
// Stop or because the device session ended on its own. It is nil before
// Start.
func (a *App) Done() <-chan struct{} {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doneCh
}

// SetEnabled pauses or resumes cursor control without ending the device
// session.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether cursor control is active.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// UpdateSettings swaps in new settings. The pipeline picks them up on
// the next event; in-flight smoothing and debounce state is rebuilt.
func (a *App) UpdateSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings = s
	a.settingsGen++
	return nil
}

// currentSettings returns the settings and their generation counter. The
// pipeline compares generations to decide whether to rebuild its
// smoother and trigger.
func (a *App) currentSettings() (Settings, uint64) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings, a.settingsGen
}
