package state

// AppState contains the UI state that is not owned by a carousel controller
// or the reveal trigger
type AppState struct {
	// Carousel interaction
	Focused int // case study index of the focused carousel, -1 for none
	Hovered int // case study index under the pointer, -1 for none

	// Mirror of the reveal trigger, read by the renderer
	Revealed map[string]bool

	// Pointer position in screen cells, -1 until the first mouse event
	MouseX int
	MouseY int

	// UI state
	StatusMessage string // status bar message
	StatusError   bool
	InPager       bool // an external pager owns the terminal
	Ready         bool // first frame sized
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Focused:  -1,
		Hovered:  -1,
		Revealed: make(map[string]bool),
		MouseX:   -1,
		MouseY:   -1,
	}
}

// MarkRevealed records that a region has faded in
func (s *AppState) MarkRevealed(region string) {
	s.Revealed[region] = true
}

// SetStatus shows an informational status message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusError = false
}

// SetError shows an error in the status bar
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusError = true
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusError = false
}

// CycleFocus moves focus delta steps through order, wrapping at both ends.
// With nothing focused, a forward step lands on the first entry and a
// backward step on the last.
func (s *AppState) CycleFocus(order []int, delta int) int {
	if len(order) == 0 {
		s.Focused = -1
		return s.Focused
	}
	pos := -1
	for i, idx := range order {
		if idx == s.Focused {
			pos = i
			break
		}
	}
	n := len(order)
	switch {
	case pos < 0 && delta >= 0:
		pos = 0
	case pos < 0:
		pos = n - 1
	default:
		pos = ((pos+delta)%n + n) % n
	}
	s.Focused = order[pos]
	return s.Focused
}
