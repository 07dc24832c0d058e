package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeJump
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// GetInputText returns the current text input for the view
func (it *InputTransformer) GetInputText() string {
	if it.mode == InputModeNormal {
		return ""
	}
	return it.textInput.View()
}

// GetInputModeString returns the mode name shown in the footer
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeJump:
		return "jump"
	default:
		return ""
	}
}
