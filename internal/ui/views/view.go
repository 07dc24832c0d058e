package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/domain"
)

// Screen rows taken by the chrome around the page viewport
const (
	HeaderHeight = 1
	FooterHeight = 2
)

// ViewState contains all the state needed for rendering the screen
type ViewState struct {
	Width        int
	Height       int
	Headline     string
	Anchors      []domain.Anchor
	ActiveAnchor string
	Body         string // the page viewport
	Status       string
	StatusError  bool
	Info         string // right side of the status line
	InputMode    string
	TextInput    string
	HelpModel    help.Model
	Keys         help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	faint  *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
		faint:  NewFaintStyles(),
	}
}

// Styles returns the active style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}

	var content strings.Builder
	content.WriteString(r.renderHeader(state, width))
	content.WriteString("\n")
	content.WriteString(state.Body)
	content.WriteString("\n")
	content.WriteString(r.renderStatus(state, width))
	content.WriteString("\n")

	if state.InputMode != "" {
		content.WriteString(r.styles.Prompt.Render("Jump to: ") + state.TextInput)
	} else if state.Keys != nil {
		content.WriteString(state.HelpModel.View(state.Keys))
	}
	return content.String()
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	nav := make([]string, 0, len(state.Anchors))
	for _, a := range state.Anchors {
		style := r.styles.Nav
		if a.ID == state.ActiveAnchor {
			style = r.styles.NavActive
		}
		nav = append(nav, style.Render(a.Label))
	}
	line := r.styles.Title.Render(state.Headline) + "   " + strings.Join(nav, r.styles.Nav.Render(" · "))
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func (r *Renderer) renderStatus(state ViewState, width int) string {
	style := r.styles.Status
	if state.StatusError {
		style = r.styles.StatusError
	}
	left := style.Render(state.Status)
	right := r.styles.Status.Render(state.Info)
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return lipgloss.NewStyle().MaxWidth(width).Render(left + " " + right)
	}
	return left + strings.Repeat(" ", pad) + right
}
