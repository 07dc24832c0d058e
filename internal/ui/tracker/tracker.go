package tracker

import (
	"sort"

	"folio/internal/reveal"
)

// Bounds is a region's line range in the rendered page
type Bounds struct {
	Top    int
	Height int
}

type observed struct {
	opts     reveal.Options
	callback func(reveal.Entry)
	// above is nil until the region has been evaluated once
	above *bool
}

// Tracker is a reveal.Observer for a scrolling terminal viewport. Lengths
// are in lines; a region's visible fraction is the share of its lines inside
// the viewport after the bottom margin is removed.
type Tracker struct {
	bounds   map[reveal.Region]Bounds
	regions  map[reveal.Region]*observed
	offset   int
	height   int
	hasFrame bool
}

// New creates a tracker with no viewport yet. Nothing is delivered until the
// first call to Scroll.
func New() *Tracker {
	return &Tracker{
		bounds:  make(map[reveal.Region]Bounds),
		regions: make(map[reveal.Region]*observed),
	}
}

// Observe implements reveal.Observer
func (t *Tracker) Observe(region reveal.Region, opts reveal.Options, callback func(reveal.Entry)) {
	t.regions[region] = &observed{opts: opts, callback: callback}
	t.evaluate(region)
}

// Unobserve implements reveal.Observer
func (t *Tracker) Unobserve(region reveal.Region) {
	delete(t.regions, region)
}

// Disconnect implements reveal.Observer
func (t *Tracker) Disconnect() {
	t.regions = make(map[reveal.Region]*observed)
}

// Observed returns the number of regions still being tracked
func (t *Tracker) Observed() int {
	return len(t.regions)
}

// SetBounds records where a region sits in the page
func (t *Tracker) SetBounds(region reveal.Region, b Bounds) {
	t.bounds[region] = b
}

// Bounds returns the recorded bounds of a region
func (t *Tracker) Bounds(region reveal.Region) (Bounds, bool) {
	b, ok := t.bounds[region]
	return b, ok
}

// Scroll moves the viewport window and delivers any threshold crossings
func (t *Tracker) Scroll(offset, height int) {
	t.offset = offset
	t.height = height
	t.hasFrame = true
	t.Sync()
}

// Sync re-evaluates every observed region against the current window
func (t *Tracker) Sync() {
	if !t.hasFrame {
		return
	}
	// deterministic delivery order: top to bottom
	names := make([]reveal.Region, 0, len(t.regions))
	for name := range t.regions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		bi, bj := t.bounds[names[i]], t.bounds[names[j]]
		if bi.Top != bj.Top {
			return bi.Top < bj.Top
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		t.evaluate(name)
	}
}

// Ratio returns the visible fraction of a region for the given bottom margin
func (t *Tracker) Ratio(region reveal.Region, bottomMargin int) float64 {
	b, ok := t.bounds[region]
	if !ok || b.Height <= 0 {
		return 0
	}
	top := t.offset
	bottom := t.offset + t.height - bottomMargin
	if bottom <= top {
		return 0
	}
	start := max(top, b.Top)
	end := min(bottom, b.Top+b.Height)
	if end <= start {
		return 0
	}
	return float64(end-start) / float64(b.Height)
}

func (t *Tracker) evaluate(region reveal.Region) {
	o, ok := t.regions[region]
	if !ok || !t.hasFrame {
		return
	}
	if _, known := t.bounds[region]; !known {
		return
	}
	ratio := t.Ratio(region, o.opts.BottomMargin)
	above := ratio > 0 && ratio >= o.opts.Threshold
	if o.above != nil && *o.above == above {
		return
	}
	o.above = &above
	o.callback(reveal.Entry{
		Region:            region,
		IntersectionRatio: ratio,
		IsIntersecting:    ratio > 0,
	})
}
