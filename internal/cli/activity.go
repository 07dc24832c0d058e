package cli

import (
	"log"

	"folio/internal/eventbus"
)

// subscribeActivityLog records page activity in the log file and returns a
// function that removes the subscriptions
func subscribeActivityLog(bus eventbus.EventBus) func() {
	logEvent := func(e eventbus.DomainEvent) {
		switch e := e.(type) {
		case eventbus.SlideChangedEvent:
			log.Printf("activity: %s slide %d -> %d (%s)", e.Carousel, e.From, e.To, e.Cause)
		case eventbus.CarouselPausedEvent:
			log.Printf("activity: %s paused", e.Carousel)
		case eventbus.CarouselResumedEvent:
			log.Printf("activity: %s resumed", e.Carousel)
		case eventbus.CarouselStoppedEvent:
			log.Printf("activity: %s stopped", e.Carousel)
		case eventbus.RegionRevealedEvent:
			log.Printf("activity: revealed %s", e.Region)
		case eventbus.DocumentOpenedEvent:
			log.Printf("activity: opened %q from %s", e.Title, e.Carousel)
		case eventbus.ErrorEvent:
			if e.Err != nil {
				log.Printf("activity: error: %s: %v", e.Message, e.Err)
			} else {
				log.Printf("activity: error: %s", e.Message)
			}
		case eventbus.ConfigLoadedEvent:
			log.Printf("activity: config loaded from %s", e.Path)
		case eventbus.ConfigSavedEvent:
			log.Printf("activity: config saved to %s", e.Path)
		default:
			log.Printf("activity: %s", e.Type())
		}
	}

	var unsubs []func()
	for _, t := range []eventbus.EventType{
		eventbus.EventSlideChanged,
		eventbus.EventCarouselPaused,
		eventbus.EventCarouselResumed,
		eventbus.EventCarouselStopped,
		eventbus.EventRegionRevealed,
		eventbus.EventDocumentOpened,
		eventbus.EventAppReady,
		eventbus.EventError,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		unsubs = append(unsubs, bus.Subscribe(t, logEvent))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
