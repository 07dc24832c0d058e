package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"folio/internal/ui/input/types"
)

// JumpMode reads a section name or case study title to scroll to
type JumpMode struct {
	TextInputMode
}

func NewJumpMode(ti *textinput.Model) *JumpMode {
	return &JumpMode{
		TextInputMode: NewTextInputMode(types.ModeJump, "jump", "Jump to: ", ti),
	}
}
