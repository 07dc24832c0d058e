package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/domain"
)

// Page regions that fade in when scrolled into view
const (
	RegionHero    = "hero"
	RegionMetrics = "metrics"
	RegionImpact  = "impact"
	RegionSkills  = "skills"
	RegionContact = "contact"
)

// PageMargin is the left margin of the page in columns
const PageMargin = 2

// CaseRegion returns the region name of a case study
func CaseRegion(id string) string {
	return "case/" + id
}

// AnchorRegion maps a navigation anchor to the region it scrolls to
func AnchorRegion(anchor string) string {
	switch anchor {
	case "about":
		return RegionHero
	case "impact":
		return RegionImpact
	case "skills":
		return RegionSkills
	case "contact":
		return RegionContact
	}
	return ""
}

// PageState contains all the state needed to render the scrolling page
type PageState struct {
	Portfolio   *domain.Portfolio
	Width       int // content width, without the margin
	Revealed    map[string]bool
	AllRevealed bool
	Carousels   []CarouselView // by case study index; no items means no carousel
}

// Block is the line range a region occupies in the page
type Block struct {
	Region string
	Top    int
	Height int
}

// Contains reports whether a page line falls inside the block
func (b Block) Contains(line int) bool {
	return line >= b.Top && line < b.Top+b.Height
}

// CarouselHit locates a carousel in page coordinates
type CarouselHit struct {
	Index   int // case study index
	Block   Block
	DotsRow int
	Dots    []ColumnRange
	Prev    ColumnRange
	Next    ColumnRange
}

// Layout is a rendered page together with its geometry
type Layout struct {
	Content   string
	Lines     int
	Blocks    []Block
	Carousels []CarouselHit
}

// Block returns the geometry of a region
func (l Layout) Block(region string) (Block, bool) {
	for _, b := range l.Blocks {
		if b.Region == region {
			return b, true
		}
	}
	return Block{}, false
}

// CarouselAt returns the case study index of the carousel covering a page
// line
func (l Layout) CarouselAt(line int) (int, bool) {
	for _, c := range l.Carousels {
		if c.Block.Contains(line) {
			return c.Index, true
		}
	}
	return -1, false
}

// DotAt returns the carousel and slide of the indicator dot at a page
// position
func (l Layout) DotAt(line, col int) (carousel, slide int, ok bool) {
	for _, c := range l.Carousels {
		if c.DotsRow != line {
			continue
		}
		for i, d := range c.Dots {
			if d.Contains(col) {
				return c.Index, i, true
			}
		}
	}
	return -1, -1, false
}

// ArrowAt returns the carousel under a previous (-1) or next (+1) arrow at
// a page position
func (l Layout) ArrowAt(line, col int) (carousel, delta int, ok bool) {
	for _, c := range l.Carousels {
		if c.DotsRow != line {
			continue
		}
		switch {
		case c.Prev.Contains(col):
			return c.Index, -1, true
		case c.Next.Contains(col):
			return c.Index, 1, true
		}
	}
	return 0, 0, false
}

func shift(r ColumnRange, by int) ColumnRange {
	return ColumnRange{Start: r.Start + by, End: r.End + by}
}

// RegionAt returns the region covering a page line
func (l Layout) RegionAt(line int) (string, bool) {
	for _, b := range l.Blocks {
		if b.Contains(line) {
			return b.Region, true
		}
	}
	return "", false
}

type pageBuilder struct {
	parts  []string
	line   int
	blocks []Block
	margin lipgloss.Style
}

func (b *pageBuilder) add(region, s string) int {
	if len(b.parts) > 0 {
		b.parts = append(b.parts, "")
		b.line++
	}
	s = b.margin.Render(s)
	top := b.line
	h := lipgloss.Height(s)
	b.parts = append(b.parts, s)
	b.line += h
	b.blocks = append(b.blocks, Block{Region: region, Top: top, Height: h})
	return top
}

func (r *Renderer) stylesFor(state PageState, region string) *Styles {
	if state.AllRevealed || state.Revealed[region] {
		return r.styles
	}
	return r.faint
}

// RenderPage renders every section of the portfolio and records where each
// region and carousel landed
func (r *Renderer) RenderPage(state PageState) Layout {
	p := state.Portfolio
	width := max(state.Width, 20)
	b := &pageBuilder{margin: lipgloss.NewStyle().MarginLeft(PageMargin)}

	b.add(RegionHero, r.renderHero(p.Hero, width, r.stylesFor(state, RegionHero)))
	if len(p.Metrics) > 0 {
		b.add(RegionMetrics, r.renderMetrics(p.Metrics, width, r.stylesFor(state, RegionMetrics)))
	}
	b.add(RegionImpact, r.renderSection(p.Impact, width, r.stylesFor(state, RegionImpact)))

	var hits []CarouselHit
	for i, cs := range p.CaseStudies {
		region := CaseRegion(cs.ID)
		st := r.stylesFor(state, region)
		body := r.renderCaseStudy(cs, width, st)

		if i >= len(state.Carousels) || len(state.Carousels[i].Items) == 0 {
			b.add(region, body)
			continue
		}
		offset := lipgloss.Height(body) + 1
		widget, geo := r.renderCarousel(state.Carousels[i], width, st)
		top := b.add(region, body+"\n\n"+widget)

		hit := CarouselHit{
			Index:   i,
			Block:   Block{Region: region, Top: top + offset, Height: lipgloss.Height(widget)},
			DotsRow: top + offset + geo.DotsRow,
		}
		for _, d := range geo.Dots {
			hit.Dots = append(hit.Dots, shift(d, PageMargin))
		}
		hit.Prev = shift(geo.Prev, PageMargin)
		hit.Next = shift(geo.Next, PageMargin)
		hits = append(hits, hit)
	}

	b.add(RegionSkills, r.renderSkills(p, width, r.stylesFor(state, RegionSkills)))
	b.add(RegionContact, r.renderContact(p.Contact, width, r.stylesFor(state, RegionContact)))

	return Layout{
		Content:   strings.Join(b.parts, "\n"),
		Lines:     b.line,
		Blocks:    b.blocks,
		Carousels: hits,
	}
}
