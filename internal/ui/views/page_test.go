package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
	"folio/internal/domain"
)

func testPortfolio(t *testing.T) *domain.Portfolio {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)
	return p
}

func carouselsFor(p *domain.Portfolio) []CarouselView {
	views := make([]CarouselView, len(p.CaseStudies))
	for i, cs := range p.CaseStudies {
		views[i] = CarouselView{Items: cs.Documents, Auto: true}
	}
	return views
}

func TestRenderPageBlocksAreOrderedAndDisjoint(t *testing.T) {
	p := testPortfolio(t)
	layout := NewRenderer().RenderPage(PageState{
		Portfolio:   p,
		Width:       80,
		AllRevealed: true,
		Carousels:   carouselsFor(p),
	})

	require.Len(t, layout.Blocks, 5+len(p.CaseStudies))
	assert.Equal(t, RegionHero, layout.Blocks[0].Region)
	assert.Equal(t, RegionContact, layout.Blocks[len(layout.Blocks)-1].Region)
	for i := 1; i < len(layout.Blocks); i++ {
		prev, cur := layout.Blocks[i-1], layout.Blocks[i]
		assert.Equal(t, prev.Top+prev.Height+1, cur.Top, cur.Region)
	}
	assert.Equal(t, lipgloss.Height(layout.Content), layout.Lines)

	_, ok := layout.Block(CaseRegion("medhub"))
	assert.True(t, ok)
}

func TestCarouselGeometry(t *testing.T) {
	p := testPortfolio(t)
	state := PageState{Portfolio: p, Width: 80, AllRevealed: true, Carousels: carouselsFor(p)}
	state.Carousels[0].Selected = 1
	layout := NewRenderer().RenderPage(state)

	require.Len(t, layout.Carousels, len(p.CaseStudies))
	hit := layout.Carousels[0]
	caseBlock, _ := layout.Block(CaseRegion("gradrai"))
	assert.True(t, caseBlock.Contains(hit.Block.Top))
	assert.True(t, hit.Block.Contains(hit.DotsRow))

	idx, ok := layout.CarouselAt(hit.Block.Top)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	require.Len(t, hit.Dots, 3)
	// inactive, active (two cells wide), inactive
	assert.Equal(t, 1, hit.Dots[0].End-hit.Dots[0].Start)
	assert.Equal(t, 2, hit.Dots[1].End-hit.Dots[1].Start)

	c, slide, ok := layout.DotAt(hit.DotsRow, hit.Dots[2].Start)
	require.True(t, ok)
	assert.Equal(t, 0, c)
	assert.Equal(t, 2, slide)

	_, _, ok = layout.DotAt(hit.DotsRow, 0)
	assert.False(t, ok)

	// arrows frame the dots on the same row
	assert.Less(t, hit.Prev.End, hit.Dots[0].Start)
	assert.Greater(t, hit.Next.Start, hit.Dots[2].End)
	c, delta, ok := layout.ArrowAt(hit.DotsRow, hit.Prev.Start)
	require.True(t, ok)
	assert.Equal(t, 0, c)
	assert.Equal(t, -1, delta)
	_, delta, ok = layout.ArrowAt(hit.DotsRow, hit.Next.Start)
	require.True(t, ok)
	assert.Equal(t, 1, delta)
	_, _, ok = layout.ArrowAt(hit.DotsRow+1, hit.Next.Start)
	assert.False(t, ok)

	lines := strings.Split(layout.Content, "\n")
	assert.Contains(t, lines[hit.DotsRow], dotActive)
	assert.Contains(t, lines[hit.DotsRow], arrowPrev)
	assert.Contains(t, lines[hit.DotsRow], arrowNext)
}

func TestRenderPageShowsCarouselCaption(t *testing.T) {
	p := testPortfolio(t)
	state := PageState{Portfolio: p, Width: 80, AllRevealed: true, Carousels: carouselsFor(p)}
	state.Carousels[1].Selected = 2
	state.Carousels[1].Auto = false
	state.Carousels[1].Paused = true
	out := NewRenderer().RenderPage(state).Content

	assert.Contains(t, out, "Page 3 of 3")
	assert.Contains(t, out, "Multi-Country Compliance Framework")
	assert.Contains(t, out, "Paused")
	assert.Contains(t, out, "Auto")
	assert.Contains(t, out, "Let's Build Impact Together")
}

func TestCaseStudyWithoutDocumentsHasNoCarousel(t *testing.T) {
	p := testPortfolio(t)
	views := carouselsFor(p)
	views[3] = CarouselView{}
	layout := NewRenderer().RenderPage(PageState{Portfolio: p, Width: 80, Carousels: views})

	assert.Len(t, layout.Carousels, len(p.CaseStudies)-1)
	for _, c := range layout.Carousels {
		assert.NotEqual(t, 3, c.Index)
	}
}

func TestAnchorRegion(t *testing.T) {
	assert.Equal(t, RegionHero, AnchorRegion("about"))
	assert.Equal(t, RegionContact, AnchorRegion("contact"))
	assert.Equal(t, "", AnchorRegion("blog"))
}
