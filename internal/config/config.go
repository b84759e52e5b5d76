// Package config loads and saves the leapmouse TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds every user-tunable setting. A loaded Config is treated as
// an immutable value: reloading produces a new Config rather than
// mutating one already handed to the pipeline.
type Config struct {
	Sensor  SensorConfig  `toml:"sensor"`
	Pointer PointerConfig `toml:"pointer"`
	Screen  ScreenConfig  `toml:"screen"`
}

// SensorConfig selects the tracking service and the sensor-space
// rectangle (millimetres) that covers the full screen.
type SensorConfig struct {
	URL  string  `toml:"url"`
	MinX float64 `toml:"min_x"`
	MaxX float64 `toml:"max_x"`
	MinZ float64 `toml:"min_z"`
	MaxZ float64 `toml:"max_z"`
}

// PointerConfig tunes cursor behaviour.
type PointerConfig struct {
	// SmoothingFactor is the exponential smoothing weight in [0, 1).
	// Zero disables smoothing.
	SmoothingFactor float64 `toml:"smoothing_factor"`

	// DebounceMs suppresses duplicate clicks of one gesture kind within
	// this many milliseconds.
	DebounceMs int `toml:"debounce_ms"`

	// MinFingersForTap ignores taps with fewer extended fingers. Zero
	// disables the gate.
	MinFingersForTap int `toml:"min_fingers_for_tap"`

	InvertX bool `toml:"invert_x"`
	InvertY bool `toml:"invert_y"`
}

// ScreenConfig overrides the target screen size. Zero means detect the
// primary display at startup.
type ScreenConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the configuration used when no file exists. The sensor
// rectangle matches the device's comfortable interaction box over a desk.
func Default() *Config {
	return &Config{
		Sensor: SensorConfig{
			URL:  "ws://127.0.0.1:6437/v6.json",
			MinX: -120,
			MaxX: 120,
			MinZ: -80,
			MaxZ: 80,
		},
		Pointer: PointerConfig{
			SmoothingFactor:  0.65,
			DebounceMs:       200,
			MinFingersForTap: 0,
		},
		Screen: ScreenConfig{},
	}
}

// DefaultDir returns the per-user configuration directory.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "leapmouse"), nil
}

// Load reads the config file at path. When the file does not exist, the
// default configuration is written there and returned, so a first run
// leaves an editable file behind.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to path in TOML form, creating the directory if
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	if c.Sensor.URL == "" {
		return fmt.Errorf("sensor.url must not be empty")
	}
	if c.Sensor.MaxX <= c.Sensor.MinX {
		return fmt.Errorf("sensor x bounds are empty: [%g, %g]", c.Sensor.MinX, c.Sensor.MaxX)
	}
	if c.Sensor.MaxZ <= c.Sensor.MinZ {
		return fmt.Errorf("sensor z bounds are empty: [%g, %g]", c.Sensor.MinZ, c.Sensor.MaxZ)
	}
	if c.Pointer.SmoothingFactor < 0 || c.Pointer.SmoothingFactor >= 1 {
		return fmt.Errorf("pointer.smoothing_factor must be in [0, 1), got %g", c.Pointer.SmoothingFactor)
	}
	if c.Pointer.DebounceMs < 0 {
		return fmt.Errorf("pointer.debounce_ms must not be negative, got %d", c.Pointer.DebounceMs)
	}
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		return fmt.Errorf("screen size must not be negative, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	return nil
}
