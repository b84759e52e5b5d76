package mouse

import "sync"

// MockMouse records cursor commands for tests and can be primed to fail.
type MockMouse struct {
	mu     sync.Mutex
	moves  []Move
	clicks []string

	moveErr  error
	clickErr error
	width    int
	height   int
}

// Move is one recorded Move call.
type Move struct {
	X int
	Y int
}

// NewMockMouse creates a MockMouse reporting the given screen size.
func NewMockMouse(width, height int) *MockMouse {
	return &MockMouse{width: width, height: height}
}

// SetMoveError sets the error returned by subsequent Move calls.
func (m *MockMouse) SetMoveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moveErr = err
}

// SetClickError sets the error returned by subsequent Click calls.
func (m *MockMouse) SetClickError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clickErr = err
}

// Move records the requested position, or returns the primed error
// without recording anything.
func (m *MockMouse) Move(x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.moveErr != nil {
		return m.moveErr
	}
	m.moves = append(m.moves, Move{X: x, Y: y})
	return nil
}

// Click records the clicked button.
func (m *MockMouse) Click(button string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clickErr != nil {
		return m.clickErr
	}
	m.clicks = append(m.clicks, button)
	return nil
}

// ScreenSize returns the configured size.
func (m *MockMouse) ScreenSize() (int, int) {
	return m.width, m.height
}

// Moves returns a copy of the recorded move calls.
func (m *MockMouse) Moves() []Move {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Move, len(m.moves))
	copy(out, m.moves)
	return out
}

// Clicks returns a copy of the recorded click buttons.
func (m *MockMouse) Clicks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.clicks))
	copy(out, m.clicks)
	return out
}
