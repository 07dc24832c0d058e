package handlers

import (
	"fmt"
	"log"

	"folio/internal/eventbus"
	"folio/internal/ui/state"
)

// EventHandler turns domain events from outside the UI into status updates
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes a domain event and reports whether the status line
// changed
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) bool {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		h.state.SetError(msg)
		return true

	case eventbus.ContentLoadedEvent:
		h.state.SetStatus(fmt.Sprintf("Loaded %d case studies", e.CaseStudies))
		return true

	default:
		log.Printf("EventHandler: ignoring %s", event.Type())
		return false
	}
}
