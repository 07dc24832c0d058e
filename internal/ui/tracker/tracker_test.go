package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/reveal"
)

func collect(t *Tracker, region reveal.Region, opts reveal.Options) *[]reveal.Entry {
	var entries []reveal.Entry
	t.Observe(region, opts, func(e reveal.Entry) { entries = append(entries, e) })
	return &entries
}

func TestNothingBeforeFirstScroll(t *testing.T) {
	tr := New()
	tr.SetBounds("a", Bounds{Top: 0, Height: 10})
	entries := collect(tr, "a", reveal.Options{Threshold: 0.1})
	assert.Empty(t, *entries)

	tr.Scroll(0, 20)
	require.Len(t, *entries, 1)
	assert.True(t, (*entries)[0].IsIntersecting)
	assert.Equal(t, 1.0, (*entries)[0].IntersectionRatio)
}

func TestInitialEntryForHiddenRegion(t *testing.T) {
	tr := New()
	tr.Scroll(0, 20)
	tr.SetBounds("far", Bounds{Top: 100, Height: 10})
	entries := collect(tr, "far", reveal.Options{Threshold: 0.1})

	require.Len(t, *entries, 1)
	assert.False(t, (*entries)[0].IsIntersecting)
	assert.Zero(t, (*entries)[0].IntersectionRatio)
}

func TestOnlyCrossingsDelivered(t *testing.T) {
	tr := New()
	tr.SetBounds("card", Bounds{Top: 30, Height: 10})
	tr.Scroll(0, 20)
	entries := collect(tr, "card", reveal.Options{Threshold: 0.1})
	require.Len(t, *entries, 1)

	tr.Scroll(5, 20) // window [5,25), still outside
	assert.Len(t, *entries, 1)

	tr.Scroll(11, 20) // window [11,31), one line = 10%
	require.Len(t, *entries, 2)
	assert.InDelta(t, 0.1, (*entries)[1].IntersectionRatio, 1e-9)

	tr.Scroll(15, 20) // still above threshold
	assert.Len(t, *entries, 2)

	tr.Scroll(0, 20) // back out
	require.Len(t, *entries, 3)
	assert.False(t, (*entries)[2].IsIntersecting)
}

func TestBottomMarginDelaysVisibility(t *testing.T) {
	tr := New()
	tr.SetBounds("card", Bounds{Top: 20, Height: 10})
	tr.Scroll(0, 22)

	assert.InDelta(t, 0.2, tr.Ratio("card", 0), 1e-9)
	assert.Zero(t, tr.Ratio("card", 2), "two margin lines hide the two visible lines")

	entries := collect(tr, "card", reveal.Options{Threshold: 0.1, BottomMargin: 2})
	require.Len(t, *entries, 1)
	assert.False(t, (*entries)[0].IsIntersecting)

	tr.Scroll(1, 22)
	require.Len(t, *entries, 2)
	assert.True(t, (*entries)[1].IsIntersecting)
}

func TestMarginLargerThanViewport(t *testing.T) {
	tr := New()
	tr.SetBounds("a", Bounds{Top: 0, Height: 5})
	tr.Scroll(0, 10)
	assert.Zero(t, tr.Ratio("a", 50))
}

func TestTriggerIntegration(t *testing.T) {
	tr := New()
	tr.SetBounds("top", Bounds{Top: 0, Height: 10})
	tr.SetBounds("bottom", Bounds{Top: 40, Height: 10})

	var order []reveal.Region
	trigger := reveal.New(tr, reveal.Options{Threshold: 0.1, BottomMargin: 2}, func(r reveal.Region) {
		order = append(order, r)
	})
	trigger.Observe("top")
	trigger.Observe("bottom")
	tr.Scroll(0, 20)

	assert.True(t, trigger.Revealed("top"))
	assert.False(t, trigger.Revealed("bottom"))
	assert.Equal(t, 1, tr.Observed(), "revealed region is unobserved")

	tr.Scroll(30, 20)
	assert.True(t, trigger.Revealed("bottom"))
	assert.Equal(t, []reveal.Region{"top", "bottom"}, order)

	tr.Scroll(0, 20)
	assert.True(t, trigger.Revealed("bottom"), "reveal never reverts")

	trigger.DisconnectAll()
	assert.Equal(t, 0, tr.Observed())
}
