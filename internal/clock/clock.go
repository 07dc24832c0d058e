// Package clock schedules delayed callbacks on a real or a manually advanced clock.
package clock

import "time"

// Timer is a handle to a scheduled callback
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// Scheduler schedules callbacks after a delay.
//
// Implementations must deliver callbacks on the owner's event loop so the
// callback never runs concurrently with other operations on the same
// component.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}
