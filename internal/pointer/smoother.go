package pointer

// Smoother applies exponential smoothing to successive mapped positions
// to reduce jitter. A factor of 0 disables smoothing entirely; higher
// factors weight the previous position more heavily at the cost of lag.
//
// Smoothing is deterministic: the output depends only on the input
// sequence and the factor, never on wall-clock time.
type Smoother struct {
	factor      float64
	lastX       float64
	lastY       float64
	initialized bool
}

// NewSmoother creates a Smoother with the given factor, clamped to
// [0, 1).
func NewSmoother(factor float64) *Smoother {
	if factor < 0 {
		factor = 0
	}
	if factor >= 1 {
		factor = 0.99
	}
	return &Smoother{factor: factor}
}

// Smooth blends the raw point with the previous output. The first point
// after creation or Reset passes through unchanged.
func (s *Smoother) Smooth(raw ScreenPoint) ScreenPoint {
	if s.factor == 0 {
		return raw
	}

	if !s.initialized {
		s.lastX = float64(raw.X)
		s.lastY = float64(raw.Y)
		s.initialized = true
		return raw
	}

	f := s.factor
	s.lastX = float64(raw.X)*(1-f) + s.lastX*f
	s.lastY = float64(raw.Y)*(1-f) + s.lastY*f

	return ScreenPoint{
		X: int(s.lastX + 0.5),
		Y: int(s.lastY + 0.5),
	}
}

// Reset clears the smoothing history. Call it when the hand disappears
// so a reappearing hand does not drag the cursor across the screen from
// its old position.
func (s *Smoother) Reset() {
	s.lastX = 0
	s.lastY = 0
	s.initialized = false
}
