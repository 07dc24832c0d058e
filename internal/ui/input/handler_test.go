package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/ui/input/types"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeScrolling(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: -1}

	actions, _ := h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.ScrollAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyPgUp}, ctx)
	assert.Equal(t, []types.Action{types.ScrollAction{Direction: "pageup"}}, actions)

	actions, _ = h.HandleKey(runes("G"), ctx)
	assert.Equal(t, []types.Action{types.ScrollAction{Direction: "bottom"}}, actions)
}

func TestCarouselKeysNeedFocus(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: -1, Order: []int{0, 1}}

	actions, _ := h.HandleKey(runes("l"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("3"), ctx)
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, []types.Action{types.FocusCarouselAction{Delta: 1}}, actions)

	ctx.Focused = 1
	actions, _ = h.HandleKey(runes("l"), ctx)
	assert.Equal(t, []types.Action{types.SlideAction{Delta: 1}}, actions)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, ctx)
	assert.Equal(t, []types.Action{types.SlideAction{Delta: -1}}, actions)
	actions, _ = h.HandleKey(runes("3"), ctx)
	assert.Equal(t, []types.Action{types.GoToSlideAction{Index: 2}}, actions)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.OpenDocumentAction{}}, actions)
}

func TestTabWithoutCarousels(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, &ModelContext{Focused: -1})
	assert.Empty(t, actions)
}

func TestJumpMode(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: -1}

	_, cmd := h.HandleKey(runes(":"), ctx)
	assert.NotNil(t, cmd)
	require.Equal(t, types.ModeJump, h.CurrentMode())
	assert.Equal(t, "jump", h.ModeName())
	require.NotNil(t, h.TextInput())

	h.HandleKey(runes("s"), ctx)
	actions, _ := h.HandleKey(runes("k"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "sk"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "sk", Mode: types.ModeJump}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Equal(t, "normal", h.ModeName())
	assert.Nil(t, h.TextInput())
}

func TestJumpModeCancel(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: -1}

	h.HandleKey(runes(":"), ctx)
	h.HandleKey(runes("x"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	// q quits only in normal mode
	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)
}
