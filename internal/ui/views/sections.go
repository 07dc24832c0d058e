package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/domain"
)

var icons = map[string]string{
	"brain":       "◉",
	"globe":       "◍",
	"users":       "◎",
	"trending-up": "↗",
	"target":      "◈",
	"network":     "⋈",
}

func iconGlyph(name string) string {
	if g, ok := icons[name]; ok {
		return g
	}
	return "◆"
}

// inline renders CommonMark inline markup wrapped to width
func inline(text string, width int, base lipgloss.Style, st *Styles) string {
	var b strings.Builder
	for _, sp := range content.Inline(text) {
		style := base
		switch {
		case sp.Link != "":
			style = st.Link
		case sp.Code:
			style = st.Code
		case sp.Strong:
			style = st.Strong
		case sp.Emph:
			style = st.Emph
		}
		b.WriteString(style.Render(sp.Text))
	}
	if width <= 0 {
		return b.String()
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

// bullets renders a list with a hanging indent
func bullets(items []string, marker string, width int, st *Styles) string {
	const indent = 4
	out := make([]string, 0, len(items))
	for _, item := range items {
		body := inline(item, width-indent, st.Body, st)
		lines := strings.Split(body, "\n")
		for i, line := range lines {
			if i == 0 {
				lines[i] = "  " + st.Bullet.Render(marker) + " " + line
			} else {
				lines[i] = strings.Repeat(" ", indent) + line
			}
		}
		out = append(out, strings.Join(lines, "\n"))
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) renderHero(h domain.Hero, width int, st *Styles) string {
	parts := []string{
		st.Heading.Render(h.Title),
		st.Highlight.Render(h.Highlight),
		"",
		inline(h.Subtitle, width, st.Subtitle, st),
	}
	if len(h.Actions) > 0 {
		buttons := make([]string, 0, 2*len(h.Actions))
		for i, a := range h.Actions {
			if i > 0 {
				buttons = append(buttons, "  ")
			}
			buttons = append(buttons, st.Button.Render(a))
		}
		parts = append(parts, "", lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	return strings.Join(parts, "\n")
}

// grid lays cards out in rows of cols columns
func grid(cards []string, cols int) string {
	rows := make([]string, 0, (len(cards)+cols-1)/cols)
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		row := make([]string, 0, 2*cols)
		for i, c := range cards[start:end] {
			if i > 0 {
				row = append(row, " ")
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func columns(width, minCard, most int) (cols, cardWidth int) {
	cols = most
	for cols > 1 && (width-(cols-1))/cols < minCard {
		cols--
	}
	return cols, (width - (cols - 1)) / cols
}

func (r *Renderer) renderMetrics(metrics []domain.Metric, width int, st *Styles) string {
	cols, cardWidth := columns(width, 18, 4)
	cards := make([]string, 0, len(metrics))
	for _, m := range metrics {
		body := st.MetricValue.Render(m.Value) + "\n" + st.MetricLabel.Render(m.Label)
		cards = append(cards, st.Card.Width(cardWidth-2).Align(lipgloss.Center).Render(body))
	}
	return grid(cards, cols)
}

func (r *Renderer) renderSection(s domain.Section, width int, st *Styles) string {
	return st.Title.Render(s.Title) + "\n" + inline(s.Intro, width, st.Subtitle, st)
}

func (r *Renderer) renderCaseStudy(cs domain.CaseStudy, width int, st *Styles) string {
	parts := []string{
		st.Heading.Width(width).Render(iconGlyph(cs.Icon) + " " + cs.Title),
	}
	if cs.Role != "" {
		parts = append(parts, st.Role.Render(cs.Role))
	}
	if cs.Challenge != "" {
		parts = append(parts, "", st.Label.Render("The Challenge"), inline(cs.Challenge, width, st.Body, st))
	}
	if len(cs.Process) > 0 {
		parts = append(parts, "", st.Label.Render("My Process"), bullets(cs.Process, "•", width, st))
	}
	if cs.Solution != "" {
		parts = append(parts, "", st.Label.Render("The Solution"), inline(cs.Solution, width, st.Body, st))
	}
	if len(cs.Impact) > 0 {
		parts = append(parts, "", st.Label.Render("Measurable Impact"), bullets(cs.Impact, "✓", width, st))
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) renderSkills(p *domain.Portfolio, width int, st *Styles) string {
	cols, cardWidth := columns(width, 30, 2)
	cards := make([]string, 0, len(p.SkillGroups))
	for _, g := range p.SkillGroups {
		lines := []string{st.Heading.Render(iconGlyph(g.Icon) + " " + g.Title)}
		for _, item := range g.Items {
			lines = append(lines, st.Bullet.Render("•")+" "+st.Body.Render(item))
		}
		cards = append(cards, st.Card.Width(cardWidth-2).Render(strings.Join(lines, "\n")))
	}

	parts := []string{r.renderSection(p.Skills, width, st), "", grid(cards, cols)}
	if p.Vision != "" {
		vision := st.Label.Render("My Vision") + "\n" + inline(p.Vision, width-4, st.Body, st)
		parts = append(parts, "", st.Card.Width(width-2).Render(vision))
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) renderContact(c domain.Contact, width int, st *Styles) string {
	parts := []string{
		st.Title.Render(c.Title),
		inline(c.Subtitle, width, st.Subtitle, st),
		"",
	}
	if c.Email != "" {
		parts = append(parts, st.Label.Render("Email    ")+st.Link.Render(c.Email))
	}
	if c.LinkedIn != "" {
		parts = append(parts, st.Label.Render("LinkedIn ")+st.Link.Render(c.LinkedIn))
	}
	if c.Resume != "" {
		parts = append(parts, st.Label.Render("Resume   ")+st.Link.Render(c.Resume))
	}
	if c.Copyright != "" {
		parts = append(parts, "", st.Dim.Render(strings.Repeat("─", width)), st.Dim.Render(c.Copyright))
	}
	return strings.Join(parts, "\n")
}
