package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Nav           lipgloss.Style
	NavActive     lipgloss.Style
	Heading       lipgloss.Style
	Highlight     lipgloss.Style
	Subtitle      lipgloss.Style
	Body          lipgloss.Style
	Strong        lipgloss.Style
	Emph          lipgloss.Style
	Code          lipgloss.Style
	Link          lipgloss.Style
	Label         lipgloss.Style
	Role          lipgloss.Style
	Bullet        lipgloss.Style
	Button        lipgloss.Style
	MetricValue   lipgloss.Style
	MetricLabel   lipgloss.Style
	Card          lipgloss.Style
	Carousel      lipgloss.Style
	CarouselFocus lipgloss.Style
	Dot           lipgloss.Style
	DotActive     lipgloss.Style
	Badge         lipgloss.Style
	BadgeOff      lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Prompt        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Nav:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		NavActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Underline(true),
		Heading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Highlight:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Body:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Strong:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Emph:        lipgloss.NewStyle().Italic(true),
		Code:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Link:        lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("51")), // cyan
		Label:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),  // yellow
		Role:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Bullet:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Button:      lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")),
		MetricValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		MetricLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Carousel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CarouselFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Dot:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		BadgeOff:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Help:          lipgloss.NewStyle().Faint(true),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// NewFaintStyles returns styles for sections that have not been revealed
// yet: same geometry, no color, faint text
func NewFaintStyles() *Styles {
	s := NewStyles()
	faint := lipgloss.NewStyle().Faint(true)
	for _, st := range []*lipgloss.Style{
		&s.Title, &s.Heading, &s.Highlight, &s.Subtitle, &s.Body, &s.Strong,
		&s.Emph, &s.Code, &s.Link, &s.Label, &s.Role, &s.Bullet, &s.MetricValue,
		&s.MetricLabel, &s.Dot, &s.DotActive, &s.Badge, &s.BadgeOff,
	} {
		*st = faint
	}
	border := lipgloss.Color("236")
	s.Button = s.Button.BorderForeground(border).Faint(true)
	s.Card = s.Card.BorderForeground(border)
	s.Carousel = s.Carousel.BorderForeground(border)
	s.CarouselFocus = s.CarouselFocus.BorderForeground(border)
	return s
}
