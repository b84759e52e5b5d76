package pointer

import "testing"

func TestSmoother_ZeroFactorIsIdentity(t *testing.T) {
	s := NewSmoother(0)

	points := []ScreenPoint{{0, 0}, {100, 50}, {999, 999}, {3, 700}}
	for _, p := range points {
		if got := s.Smooth(p); got != p {
			t.Errorf("Smooth(%+v) = %+v with factor 0, want unchanged", p, got)
		}
	}
}

func TestSmoother_FirstPointPassesThrough(t *testing.T) {
	s := NewSmoother(0.8)

	p := ScreenPoint{400, 300}
	if got := s.Smooth(p); got != p {
		t.Errorf("first Smooth(%+v) = %+v, want passthrough", p, got)
	}
}

func TestSmoother_BlendsTowardPrevious(t *testing.T) {
	s := NewSmoother(0.5)

	s.Smooth(ScreenPoint{0, 0})
	got := s.Smooth(ScreenPoint{100, 100})

	// 100*(1-0.5) + 0*0.5 = 50
	want := ScreenPoint{50, 50}
	if got != want {
		t.Errorf("Smooth after {0,0} = %+v, want %+v", got, want)
	}
}

func TestSmoother_Deterministic(t *testing.T) {
	input := []ScreenPoint{{0, 0}, {10, 90}, {500, 500}, {499, 501}, {20, 20}}

	run := func() []ScreenPoint {
		s := NewSmoother(0.7)
		out := make([]ScreenPoint, 0, len(input))
		for _, p := range input {
			out = append(out, s.Smooth(p))
		}
		return out
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("run diverged at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSmoother_ResetForgetsHistory(t *testing.T) {
	s := NewSmoother(0.9)

	s.Smooth(ScreenPoint{0, 0})
	s.Smooth(ScreenPoint{10, 10})
	s.Reset()

	// After a reset the next point passes through instead of lerping
	// from the stale position.
	p := ScreenPoint{900, 900}
	if got := s.Smooth(p); got != p {
		t.Errorf("Smooth after Reset = %+v, want passthrough %+v", got, p)
	}
}

func TestSmoother_ConvergesToSteadyInput(t *testing.T) {
	s := NewSmoother(0.8)

	target := ScreenPoint{640, 360}
	s.Smooth(ScreenPoint{0, 0})

	var got ScreenPoint
	for i := 0; i < 200; i++ {
		got = s.Smooth(target)
	}
	if got != target {
		t.Errorf("smoothed position %+v did not converge to steady input %+v", got, target)
	}
}
