package types

// Scroll actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "halfup", "halfdown", "top", "bottom"
}

func (a ScrollAction) Type() string { return "scroll" }

// Carousel actions
type FocusCarouselAction struct {
	Delta int // +1 next carousel, -1 previous
}

func (a FocusCarouselAction) Type() string { return "focus_carousel" }

type SlideAction struct {
	Delta int // +1 next slide, -1 previous
}

func (a SlideAction) Type() string { return "slide" }

type GoToSlideAction struct {
	Index int // zero based
}

func (a GoToSlideAction) Type() string { return "goto_slide" }

type OpenDocumentAction struct{}

func (a OpenDocumentAction) Type() string { return "open_document" }

type ClearFocusAction struct{}

func (a ClearFocusAction) Type() string { return "clear_focus" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
