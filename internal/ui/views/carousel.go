package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CarouselView is the render state of one document carousel
type CarouselView struct {
	Items    []string
	Selected int
	Auto     bool // automatic advance is active
	Paused   bool
	Stopped  bool
	Focused  bool
}

// ColumnRange is a half-open range of screen columns
type ColumnRange struct {
	Start int
	End   int
}

// Contains reports whether col falls inside the range
func (c ColumnRange) Contains(col int) bool {
	return col >= c.Start && col < c.End
}

// CarouselGeometry locates the indicator dots and the previous/next arrows
// inside a rendered carousel, relative to its top-left corner. The arrows
// share the dots row.
type CarouselGeometry struct {
	DotsRow int
	Dots    []ColumnRange
	Prev    ColumnRange
	Next    ColumnRange
}

const (
	carouselFrame = 2 // border + horizontal padding on each side
	dotActive     = "━━"
	dotInactive   = "•"
	arrowPrev     = "‹"
	arrowNext     = "›"
	arrowGap      = "  "
)

func (r *Renderer) renderCarousel(v CarouselView, width int, st *Styles) (string, CarouselGeometry) {
	inner := max(width-2*carouselFrame, 10)

	var badge string
	switch {
	case v.Auto:
		badge = st.Badge.Render("● Auto")
	case v.Paused:
		badge = st.BadgeOff.Render("❚❚ Paused")
	case v.Stopped:
		badge = st.Dim.Render("■ Stopped")
	}
	left := st.Label.Render("Supporting Documents")
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(badge), 1)
	header := left + strings.Repeat(" ", gap) + badge

	title := ""
	if v.Selected >= 0 && v.Selected < len(v.Items) {
		title = v.Items[v.Selected]
	}
	page := st.Dim.Render(fmt.Sprintf("Page %d of %d", v.Selected+1, len(v.Items)))

	var dots strings.Builder
	geo := CarouselGeometry{}
	col := carouselFrame
	geo.Prev = ColumnRange{Start: col, End: col + lipgloss.Width(arrowPrev)}
	dots.WriteString(st.Label.Render(arrowPrev) + arrowGap)
	col = geo.Prev.End + len(arrowGap)
	for i := range v.Items {
		if i > 0 {
			dots.WriteString(" ")
			col++
		}
		mark, style := dotInactive, st.Dot
		if i == v.Selected {
			mark, style = dotActive, st.DotActive
		}
		w := lipgloss.Width(mark)
		geo.Dots = append(geo.Dots, ColumnRange{Start: col, End: col + w})
		dots.WriteString(style.Render(mark))
		col += w
	}
	col += len(arrowGap)
	geo.Next = ColumnRange{Start: col, End: col + lipgloss.Width(arrowNext)}
	dots.WriteString(arrowGap + st.Label.Render(arrowNext))
	dotsLine := dots.String()
	if v.Focused {
		hint := st.Dim.Render("enter: view full document")
		if pad := inner - lipgloss.Width(dotsLine) - lipgloss.Width(hint); pad > 1 {
			dotsLine += strings.Repeat(" ", pad) + hint
		}
	}

	lines := []string{
		header,
		"",
		st.Heading.MaxWidth(inner).Render("❐ " + title),
		page,
		"",
		dotsLine,
	}
	geo.DotsRow = 1 + len(lines) - 1 // top border

	frame := st.Carousel
	if v.Focused {
		frame = st.CarouselFocus
	}
	return frame.Width(width - 2).Render(strings.Join(lines, "\n")), geo
}
