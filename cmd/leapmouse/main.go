package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ayusman/leapmouse/internal/app"
	"github.com/ayusman/leapmouse/internal/config"
	"github.com/ayusman/leapmouse/internal/leap"
	"github.com/ayusman/leapmouse/internal/mouse"
	"github.com/ayusman/leapmouse/internal/pointer"
	"github.com/ayusman/leapmouse/internal/tray"
)

// connectTimeout bounds how long startup waits for the tracking service.
const connectTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to the config file (default: the per-user config directory)")
	serviceURL := flag.String("url", "", "tracking service WebSocket URL (overrides config)")
	minX := flag.Float64("min-x", 0, "sensor-space left bound in mm (overrides config)")
	maxX := flag.Float64("max-x", 0, "sensor-space right bound in mm (overrides config)")
	minZ := flag.Float64("min-z", 0, "sensor-space near depth bound in mm (overrides config)")
	maxZ := flag.Float64("max-z", 0, "sensor-space far depth bound in mm (overrides config)")
	debounce := flag.Duration("debounce", 0, "click debounce window (overrides config)")
	smoothing := flag.Float64("smoothing", 0, "cursor smoothing factor in [0,1), 0 disables (overrides config)")
	minFingers := flag.Int("min-fingers", 0, "minimum extended fingers for a tap to click (overrides config)")
	screenWidth := flag.Int("screen-width", 0, "target screen width in pixels, 0 = detect (overrides config)")
	screenHeight := flag.Int("screen-height", 0, "target screen height in pixels, 0 = detect (overrides config)")
	useTray := flag.Bool("tray", false, "show a system tray toggle")
	watchConfig := flag.Bool("watch-config", false, "reload the config file when it changes")
	verbose := flag.Bool("verbose", false, "log every frame mapping")
	flag.Parse()

	fmt.Println("LeapMouse - hand tracking pointer control")

	cfgPath := *configPath
	if cfgPath == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			log.Fatalf("Failed to locate config directory: %v", err)
		}
		cfgPath = filepath.Join(dir, "config.toml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Failed to load config (%v), using defaults", err)
		cfg = config.Default()
	} else {
		fmt.Printf("Loaded config from %s\n", cfgPath)
	}

	// Command-line flags win over the file, but only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.Sensor.URL = *serviceURL
		case "min-x":
			cfg.Sensor.MinX = *minX
		case "max-x":
			cfg.Sensor.MaxX = *maxX
		case "min-z":
			cfg.Sensor.MinZ = *minZ
		case "max-z":
			cfg.Sensor.MaxZ = *maxZ
		case "debounce":
			cfg.Pointer.DebounceMs = int(debounce.Milliseconds())
		case "smoothing":
			cfg.Pointer.SmoothingFactor = *smoothing
		case "min-fingers":
			cfg.Pointer.MinFingersForTap = *minFingers
		case "screen-width":
			cfg.Screen.Width = *screenWidth
		case "screen-height":
			cfg.Screen.Height = *screenHeight
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	m := mouse.NewSystemMouse()
	settings := buildSettings(cfg, m)

	device := leap.NewClient(cfg.Sensor.URL)

	a, err := app.New(app.Config{
		Device:   device,
		Mouse:    m,
		Settings: settings,
		Verbose:  *verbose,
	})
	if err != nil {
		log.Fatalf("Failed to configure pointer control: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	err = a.Start(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to open sensor device: %v", err)
	}

	if *watchConfig {
		watcher, err := config.Watch(cfgPath, func(c *config.Config) {
			if err := a.UpdateSettings(buildSettings(c, m)); err != nil {
				log.Printf("Rejected reloaded config: %v", err)
			}
		})
		if err != nil {
			log.Printf("Config watching unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if *useTray {
		runWithTray(a, cfgPath, sigCh)
		a.Stop()
		return
	}

	fmt.Println("Ctrl-C to quit...")
	select {
	case <-sigCh:
		a.Stop()
	case <-a.Done():
		// The device session ended on its own.
		a.Stop()
		os.Exit(1)
	}
}

// buildSettings converts the file/flag configuration into pipeline
// settings, detecting the screen size when no override is set.
func buildSettings(cfg *config.Config, m mouse.Mouse) app.Settings {
	width, height := cfg.Screen.Width, cfg.Screen.Height
	if width == 0 || height == 0 {
		width, height = m.ScreenSize()
	}

	return app.Settings{
		Mapping: pointer.MappingConfig{
			MinX:         cfg.Sensor.MinX,
			MaxX:         cfg.Sensor.MaxX,
			MinZ:         cfg.Sensor.MinZ,
			MaxZ:         cfg.Sensor.MaxZ,
			ScreenWidth:  width,
			ScreenHeight: height,
			InvertX:      cfg.Pointer.InvertX,
			InvertY:      cfg.Pointer.InvertY,
		},
		Trigger: pointer.TriggerConfig{
			DebounceWindow: time.Duration(cfg.Pointer.DebounceMs) * time.Millisecond,
			MinFingers:     cfg.Pointer.MinFingersForTap,
		},
		SmoothingFactor: cfg.Pointer.SmoothingFactor,
	}
}

// runWithTray runs the tray loop on the main goroutine, as the tray
// library requires, and returns when the user quits or a signal arrives.
func runWithTray(a *app.App, cfgPath string, sigCh <-chan os.Signal) {
	t := tray.New(cfgPath)
	t.OnToggle(a.SetEnabled)

	go func() {
		select {
		case <-sigCh:
		case <-a.Done():
		}
		t.Quit()
	}()

	t.Run()
}
