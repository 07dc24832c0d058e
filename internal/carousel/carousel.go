// Package carousel implements cyclic navigation through a fixed sequence of
// display items with timed automatic advancement that pauses while the
// pointer hovers over the carousel.
//
// A Controller is not safe for concurrent use. Every call, including the
// scheduled advance, must be delivered on the owner's event loop.
package carousel

import (
	"errors"
	"fmt"
	"time"

	"folio/internal/clock"
)

// DefaultInterval is the delay between automatic advances
const DefaultInterval = 5000 * time.Millisecond

var (
	// ErrNoItems is returned when mounting a carousel without items
	ErrNoItems = errors.New("carousel: no items")
	// ErrIndexOutOfRange is returned by GoTo for an index outside the items
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
	// ErrUnmounted is returned by GoTo after Unmount
	ErrUnmounted = errors.New("carousel: unmounted")
)

// Item is one slide in the carousel
type Item string

// State is the automatic-advance state
type State int

const (
	Running State = iota
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Cause identifies what moved the selection
type Cause string

const (
	CauseNext     Cause = "next"
	CausePrevious Cause = "previous"
	CauseGoTo     Cause = "goto"
	CauseAuto     Cause = "auto"
)

// Change describes a selection change
type Change struct {
	From  int
	To    int
	Cause Cause
}

// Controller owns the selected index of one carousel and its single
// automatic-advance timer
type Controller struct {
	items     []Item
	selected  int
	paused    bool
	unmounted bool
	timer     clock.Timer
	gen       uint64

	scheduler       clock.Scheduler
	interval        time.Duration
	resetOnNavigate bool
	onChange        func(Change)
	onStateChange   func(State)
}

// Option configures a Controller
type Option func(*Controller)

// WithInterval sets the automatic-advance interval
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithOnChange registers a callback run after every selection change
func WithOnChange(fn func(Change)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithOnStateChange registers a callback run after every pause, resume and
// unmount
func WithOnStateChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onStateChange = fn
	}
}

// WithResetOnNavigate makes manual navigation restart the automatic-advance
// interval. Off by default: a manual Next right before a scheduled advance
// is followed by that advance.
func WithResetOnNavigate(reset bool) Option {
	return func(c *Controller) {
		c.resetOnNavigate = reset
	}
}

// Mount creates a controller showing the first item and arms the
// automatic-advance timer
func Mount(items []Item, scheduler clock.Scheduler, opts ...Option) (*Controller, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if scheduler == nil {
		return nil, errors.New("carousel: nil scheduler")
	}

	c := &Controller{
		items:     append([]Item(nil), items...),
		scheduler: scheduler,
		interval:  DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.arm()
	return c, nil
}

// Next shows the following item, wrapping to the first
func (c *Controller) Next() {
	if c.unmounted {
		return
	}
	c.move(c.selected+1, CauseNext)
	c.manual()
}

// Previous shows the preceding item, wrapping to the last
func (c *Controller) Previous() {
	if c.unmounted {
		return
	}
	c.move(c.selected-1, CausePrevious)
	c.manual()
}

// GoTo shows the item at index. Indices outside [0, Len()) are rejected and
// leave the selection unchanged.
func (c *Controller) GoTo(index int) error {
	if c.unmounted {
		return ErrUnmounted
	}
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	c.move(index, CauseGoTo)
	c.manual()
	return nil
}

// SetHovered pauses automatic advancement while hovered. Leaving the hover
// arms a fresh timer for a full interval.
func (c *Controller) SetHovered(hovered bool) {
	if c.unmounted || c.paused == hovered {
		return
	}
	c.paused = hovered
	if hovered {
		c.cancel()
		c.notifyState(Paused)
		return
	}
	c.arm()
	c.notifyState(Running)
}

// Unmount cancels the pending timer. The controller is inert afterwards.
func (c *Controller) Unmount() {
	if c.unmounted {
		return
	}
	c.unmounted = true
	c.cancel()
	c.notifyState(Stopped)
}

// Selected returns the index of the visible item
func (c *Controller) Selected() int {
	return c.selected
}

// Current returns the visible item
func (c *Controller) Current() Item {
	return c.items[c.selected]
}

// Items returns a copy of the items
func (c *Controller) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Len returns the number of items
func (c *Controller) Len() int {
	return len(c.items)
}

// Paused reports whether the pointer is over the carousel
func (c *Controller) Paused() bool {
	return c.paused
}

// State returns the automatic-advance state
func (c *Controller) State() State {
	switch {
	case c.unmounted:
		return Stopped
	case c.paused:
		return Paused
	default:
		return Running
	}
}

// AutoBadge reports whether the "Auto" indicator should be shown
func (c *Controller) AutoBadge() bool {
	return c.State() == Running
}

// Armed reports whether an automatic advance is scheduled
func (c *Controller) Armed() bool {
	return c.timer != nil
}

// Interval returns the automatic-advance interval
func (c *Controller) Interval() time.Duration {
	return c.interval
}

func (c *Controller) move(to int, cause Cause) {
	n := len(c.items)
	to = ((to % n) + n) % n
	from := c.selected
	c.selected = to
	if c.onChange != nil && from != to {
		c.onChange(Change{From: from, To: to, Cause: cause})
	}
}

func (c *Controller) manual() {
	if c.resetOnNavigate && !c.paused {
		c.arm()
	}
}

func (c *Controller) fire(gen uint64) {
	if gen != c.gen {
		return
	}
	c.timer = nil
	if c.unmounted || c.paused {
		return
	}
	c.move(c.selected+1, CauseAuto)
	c.arm()
}

// arm replaces any pending timer with one due a full interval from now
func (c *Controller) arm() {
	c.cancel()
	gen := c.gen
	c.timer = c.scheduler.After(c.interval, func() { c.fire(gen) })
}

// cancel stops the pending timer; a callback that was already queued is
// suppressed by the generation check in fire
func (c *Controller) cancel() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) notifyState(s State) {
	if c.onStateChange != nil {
		c.onStateChange(s)
	}
}
