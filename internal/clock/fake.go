package clock

import (
	"sort"
	"time"
)

// Fake is a simulated Scheduler. Time only moves when Advance is called and
// due callbacks run synchronously on the caller's goroutine.
type Fake struct {
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock  *Fake
	due    time.Duration
	seq    int
	fn     func()
	active bool
}

// NewFake creates a fake clock at simulated time zero
func NewFake() *Fake {
	return &Fake{}
}

// After registers fn to run once Now() reaches Now()+d
func (f *Fake) After(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	f.seq++
	t := &fakeTimer{clock: f, due: f.now + d, seq: f.seq, fn: fn, active: true}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves simulated time forward by d, running every callback that
// becomes due in due-time order. Callbacks armed while advancing fire in
// the same call when they fall due before the target time.
func (f *Fake) Advance(d time.Duration) {
	target := f.now + d
	for {
		next := f.nextDue(target)
		if next == nil {
			break
		}
		f.now = next.due
		next.active = false
		f.compact()
		next.fn()
	}
	f.now = target
}

// Now returns the elapsed simulated time
func (f *Fake) Now() time.Duration {
	return f.now
}

// Pending returns the number of armed callbacks
func (f *Fake) Pending() int {
	n := 0
	for _, t := range f.timers {
		if t.active {
			n++
		}
	}
	return n
}

// NextDue returns the due time of the earliest armed callback
func (f *Fake) NextDue() (time.Duration, bool) {
	var best *fakeTimer
	for _, t := range f.timers {
		if t.active && (best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq)) {
			best = t
		}
	}
	if best == nil {
		return 0, false
	}
	return best.due, true
}

func (f *Fake) nextDue(limit time.Duration) *fakeTimer {
	active := make([]*fakeTimer, 0, len(f.timers))
	for _, t := range f.timers {
		if t.active && t.due <= limit {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].due != active[j].due {
			return active[i].due < active[j].due
		}
		return active[i].seq < active[j].seq
	})
	return active[0]
}

func (f *Fake) compact() {
	kept := f.timers[:0]
	for _, t := range f.timers {
		if t.active {
			kept = append(kept, t)
		}
	}
	f.timers = kept
}

func (t *fakeTimer) Stop() bool {
	if !t.active {
		return false
	}
	t.active = false
	t.clock.compact()
	return true
}
