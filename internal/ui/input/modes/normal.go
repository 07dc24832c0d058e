package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

type NormalMode struct {
	keys KeyMap
}

func NewNormalMode(keys KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit), key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.ScrollAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.ScrollAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.HalfUp):
		return []types.Action{types.ScrollAction{Direction: "halfup"}}, true
	case key.Matches(msg, k.HalfDown):
		return []types.Action{types.ScrollAction{Direction: "halfdown"}}, true
	case key.Matches(msg, k.Top):
		return []types.Action{types.ScrollAction{Direction: "top"}}, true
	case key.Matches(msg, k.Bottom):
		return []types.Action{types.ScrollAction{Direction: "bottom"}}, true

	case key.Matches(msg, k.NextFocus):
		if ctx.CarouselCount() == 0 {
			return nil, true
		}
		return []types.Action{types.FocusCarouselAction{Delta: 1}}, true
	case key.Matches(msg, k.PrevFocus):
		if ctx.CarouselCount() == 0 {
			return nil, true
		}
		return []types.Action{types.FocusCarouselAction{Delta: -1}}, true
	case key.Matches(msg, k.ClearFocus):
		if ctx.FocusedCarousel() < 0 {
			return nil, true
		}
		return []types.Action{types.ClearFocusAction{}}, true

	case key.Matches(msg, k.Previous):
		if ctx.FocusedCarousel() < 0 {
			return nil, false
		}
		return []types.Action{types.SlideAction{Delta: -1}}, true
	case key.Matches(msg, k.Next):
		if ctx.FocusedCarousel() < 0 {
			return nil, false
		}
		return []types.Action{types.SlideAction{Delta: 1}}, true
	case key.Matches(msg, k.GoTo):
		if ctx.FocusedCarousel() < 0 {
			return nil, false
		}
		// out-of-range digits still go through so the rejection is reported
		return []types.Action{types.GoToSlideAction{Index: int(msg.String()[0] - '1')}}, true
	case key.Matches(msg, k.Open):
		if ctx.FocusedCarousel() < 0 {
			return nil, false
		}
		return []types.Action{types.OpenDocumentAction{}}, true

	case key.Matches(msg, k.Jump):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
