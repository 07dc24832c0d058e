package ui

import (
	"folio/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// timerFiredMsg is posted when a loop scheduler timer expires
type timerFiredMsg struct {
	id uint64
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager has exited
type resumeRenderingMsg struct{}
