// Package reveal flips display regions into a revealed state the first time
// they scroll into view. The visibility source is abstracted behind
// Observer so the trigger works against any host.
package reveal

// Region identifies an observed display region
type Region string

// Options control when a region counts as visible
type Options struct {
	// Threshold is the visible fraction of the region required to reveal it
	Threshold float64
	// BottomMargin shrinks the bottom edge of the tracking viewport, in the
	// host's length unit
	BottomMargin int
}

// DefaultOptions returns a 10% threshold with a 50 unit bottom margin
func DefaultOptions() Options {
	return Options{Threshold: 0.1, BottomMargin: 50}
}

// Entry is a visibility notification for one region
type Entry struct {
	Region            Region
	IntersectionRatio float64
	IsIntersecting    bool
}

// Observer is the host's visibility capability
type Observer interface {
	// Observe starts delivering entries for region to callback
	Observe(region Region, opts Options, callback func(Entry))
	// Unobserve stops delivering entries for region
	Unobserve(region Region)
	// Disconnect stops all observation
	Disconnect()
}

// Trigger reveals regions once. It is not safe for concurrent use; the
// observer must deliver entries on the owner's event loop.
type Trigger struct {
	observer     Observer
	opts         Options
	onReveal     func(Region)
	revealed     map[Region]bool
	disconnected bool
}

// New creates a trigger. onReveal, if non-nil, runs once per region when it
// is revealed.
func New(observer Observer, opts Options, onReveal func(Region)) *Trigger {
	return &Trigger{
		observer: observer,
		opts:     opts,
		onReveal: onReveal,
		revealed: make(map[Region]bool),
	}
}

// Observe registers a region for visibility tracking
func (t *Trigger) Observe(region Region) {
	if t.disconnected {
		return
	}
	if _, ok := t.revealed[region]; ok {
		return
	}
	t.revealed[region] = false
	t.observer.Observe(region, t.opts, t.handle)
}

// Revealed reports whether region has been revealed
func (t *Trigger) Revealed(region Region) bool {
	return t.revealed[region]
}

// RevealedCount returns the number of revealed regions
func (t *Trigger) RevealedCount() int {
	n := 0
	for _, r := range t.revealed {
		if r {
			n++
		}
	}
	return n
}

// DisconnectAll stops all observation. Later notifications are ignored.
func (t *Trigger) DisconnectAll() {
	if t.disconnected {
		return
	}
	t.disconnected = true
	t.observer.Disconnect()
}

// handle is the callback passed to the observer for every region
func (t *Trigger) handle(e Entry) {
	if t.disconnected {
		return
	}
	revealed, tracked := t.revealed[e.Region]
	if !tracked || revealed {
		return
	}
	if !e.IsIntersecting || e.IntersectionRatio < t.opts.Threshold {
		return
	}
	t.revealed[e.Region] = true
	t.observer.Unobserve(e.Region)
	if t.onReveal != nil {
		t.onReveal(e.Region)
	}
}
