package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"folio/internal/carousel"
	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	portfolio        *domain.Portfolio
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, p *domain.Portfolio, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		portfolio:        p,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it lists
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// PageWidth returns the content width of the page for the terminal width
func (vm *ViewModel) PageWidth() int {
	return PageWidth(vm.width, vm.config.UI.MaxWidth)
}

// ViewportHeight returns the rows left for the page between header and footer
func (vm *ViewModel) ViewportHeight() int {
	return max(vm.height-views.HeaderHeight-views.FooterHeight, 1)
}

// PageWidth fits the page between the margins, capped at maxWidth when it
// is positive
func PageWidth(termWidth, maxWidth int) int {
	w := termWidth - 2*views.PageMargin
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	return max(w, 20)
}

// CarouselView converts a controller into its render state
func CarouselView(c *carousel.Controller, focused bool) views.CarouselView {
	if c == nil {
		return views.CarouselView{}
	}
	items := c.Items()
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = string(it)
	}
	st := c.State()
	return views.CarouselView{
		Items:    titles,
		Selected: c.Selected(),
		Auto:     c.AutoBadge(),
		Paused:   st == carousel.Paused,
		Stopped:  st == carousel.Stopped,
		Focused:  focused,
	}
}

// BuildPageState creates a PageState for the scrolling page. carousels is
// indexed by case study; nil entries have no carousel.
func (vm *ViewModel) BuildPageState(carousels []*carousel.Controller) views.PageState {
	cv := make([]views.CarouselView, len(carousels))
	for i, c := range carousels {
		cv[i] = CarouselView(c, i == vm.state.Focused)
	}
	return views.PageState{
		Portfolio: vm.portfolio,
		Width:     vm.PageWidth(),
		Revealed:  vm.state.Revealed,
		Carousels: cv,
	}
}

// StaticPage creates a fully revealed PageState with every carousel on its
// first document
func StaticPage(p *domain.Portfolio, width int) views.PageState {
	cv := make([]views.CarouselView, len(p.CaseStudies))
	for i, cs := range p.CaseStudies {
		cv[i] = views.CarouselView{Items: cs.Documents, Auto: len(cs.Documents) > 0}
	}
	return views.PageState{
		Portfolio:   p,
		Width:       width,
		AllRevealed: true,
		Carousels:   cv,
	}
}

// StatusInfo describes the focused carousel, or reveal progress when none
// is focused
func (vm *ViewModel) StatusInfo(carousels []*carousel.Controller, revealed, regions int) string {
	f := vm.state.Focused
	if f >= 0 && f < len(carousels) && carousels[f] != nil {
		c := carousels[f]
		return fmt.Sprintf("%s · %d/%d · %s", vm.portfolio.CaseStudies[f].ID, c.Selected()+1, c.Len(), c.State())
	}
	return fmt.Sprintf("%d/%d sections", revealed, regions)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(body, info, activeAnchor string) views.ViewState {
	return views.ViewState{
		Width:        vm.width,
		Height:       vm.height,
		Headline:     vm.portfolio.Headline,
		Anchors:      domain.Anchors(),
		ActiveAnchor: activeAnchor,
		Body:         body,
		Status:       vm.state.StatusMessage,
		StatusError:  vm.state.StatusError,
		Info:         info,
		InputMode:    vm.inputTransformer.GetInputModeString(),
		TextInput:    vm.inputTransformer.GetInputText(),
		HelpModel:    vm.help,
		Keys:         vm.keys,
	}
}
