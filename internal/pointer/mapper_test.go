package pointer

import (
	"testing"

	"github.com/ayusman/leapmouse/internal/leap"
)

// testConfig returns the mapping used throughout the mapper tests: a
// 200mm x 200mm sensor rectangle onto a 1000x1000 screen.
func testConfig() MappingConfig {
	return MappingConfig{
		MinX:         -100,
		MaxX:         100,
		MinZ:         -100,
		MaxZ:         100,
		ScreenWidth:  1000,
		ScreenHeight: 1000,
	}
}

func TestMapPosition_LinearRescale(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name    string
		sensorX float64
		wantX   int
	}{
		{"left edge maps to first pixel", -100, 0},
		{"right edge maps to last pixel", 100, 999},
		{"center maps to middle of screen", 0, 500},
		{"quarter position", -50, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPosition(leap.Vector{X: tt.sensorX, Z: 0}, cfg)
			if got.X != tt.wantX {
				t.Errorf("MapPosition(x=%g).X = %d, want %d", tt.sensorX, got.X, tt.wantX)
			}
		})
	}
}

func TestMapPosition_ClampsOutOfRange(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name string
		pos  leap.Vector
		want ScreenPoint
	}{
		{"far left clamps to x=0", leap.Vector{X: -500, Z: 0}, ScreenPoint{0, 500}},
		{"far right clamps to last column", leap.Vector{X: 500, Z: 0}, ScreenPoint{999, 500}},
		{"far depth clamps to last row", leap.Vector{X: 0, Z: 10000}, ScreenPoint{500, 999}},
		{"both axes clamp independently", leap.Vector{X: -500, Z: -500}, ScreenPoint{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPosition(tt.pos, cfg)
			if got != tt.want {
				t.Errorf("MapPosition(%+v) = %+v, want %+v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestMapPosition_AlwaysWithinScreen(t *testing.T) {
	cfg := testConfig()

	// Sweep well beyond the configured rectangle in both axes; every
	// result must stay inside the screen.
	for x := -300.0; x <= 300; x += 7.3 {
		for z := -300.0; z <= 300; z += 7.3 {
			p := MapPosition(leap.Vector{X: x, Z: z}, cfg)
			if p.X < 0 || p.X >= cfg.ScreenWidth || p.Y < 0 || p.Y >= cfg.ScreenHeight {
				t.Fatalf("MapPosition(x=%g, z=%g) = %+v is off screen", x, z, p)
			}
		}
	}
}

func TestMapPosition_Monotonic(t *testing.T) {
	cfg := testConfig()

	prev := MapPosition(leap.Vector{X: cfg.MinX, Z: 0}, cfg)
	for x := cfg.MinX; x <= cfg.MaxX; x += 0.5 {
		p := MapPosition(leap.Vector{X: x, Z: 0}, cfg)
		if p.X < prev.X {
			t.Fatalf("mapping inverted at x=%g: %d after %d", x, p.X, prev.X)
		}
		prev = p
	}

	prev = MapPosition(leap.Vector{X: 0, Z: cfg.MinZ}, cfg)
	for z := cfg.MinZ; z <= cfg.MaxZ; z += 0.5 {
		p := MapPosition(leap.Vector{X: 0, Z: z}, cfg)
		if p.Y < prev.Y {
			t.Fatalf("mapping inverted at z=%g: %d after %d", z, p.Y, prev.Y)
		}
		prev = p
	}
}

func TestMapPosition_InvertedAxes(t *testing.T) {
	cfg := testConfig()
	cfg.InvertX = true
	cfg.InvertY = true

	got := MapPosition(leap.Vector{X: -100, Z: -100}, cfg)
	want := ScreenPoint{999, 999}
	if got != want {
		t.Errorf("inverted MapPosition = %+v, want %+v", got, want)
	}
}

func TestMapFrame_NoHandSkipsMapping(t *testing.T) {
	frame := leap.Frame{ID: 1, Timestamp: 100}

	if _, ok := MapFrame(frame, testConfig()); ok {
		t.Error("MapFrame reported a point for a frame with no hands")
	}
}

func TestMapFrame_UsesPrimaryHand(t *testing.T) {
	frame := leap.Frame{
		ID:        1,
		Timestamp: 100,
		Hands: []leap.Hand{
			{ID: 1, PalmPosition: leap.Vector{X: 0, Z: 0}},
			{ID: 2, PalmPosition: leap.Vector{X: 100, Z: 100}},
		},
	}

	got, ok := MapFrame(frame, testConfig())
	if !ok {
		t.Fatal("MapFrame reported no point for a frame with hands")
	}
	want := ScreenPoint{500, 500}
	if got != want {
		t.Errorf("MapFrame = %+v, want %+v (primary hand)", got, want)
	}
}

func TestMappingConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MappingConfig)
		wantErr bool
	}{
		{"valid config", func(c *MappingConfig) {}, false},
		{"empty x bounds", func(c *MappingConfig) { c.MaxX = c.MinX }, true},
		{"inverted z bounds", func(c *MappingConfig) { c.MinZ, c.MaxZ = c.MaxZ, c.MinZ }, true},
		{"zero screen width", func(c *MappingConfig) { c.ScreenWidth = 0 }, true},
		{"negative screen height", func(c *MappingConfig) { c.ScreenHeight = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
