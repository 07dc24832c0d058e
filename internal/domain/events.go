package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventContentLoaded   EventType = "ContentLoaded"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventSlideChanged    EventType = "SlideChanged"
	EventCarouselPaused  EventType = "CarouselPaused"
	EventCarouselResumed EventType = "CarouselResumed"
	EventCarouselStopped EventType = "CarouselStopped"
	EventRegionRevealed  EventType = "RegionRevealed"
	EventDocumentOpened  EventType = "DocumentOpened"
	EventError           EventType = "Error"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ContentLoadedEvent is emitted once the portfolio content is parsed
type ContentLoadedEvent struct {
	Source      string // file path, or "built-in"
	CaseStudies int
}

func (e ContentLoadedEvent) Type() EventType { return EventContentLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// SlideChangedEvent is emitted when a carousel shows a different document
type SlideChangedEvent struct {
	Carousel string // case study ID
	From     int
	To       int
	Cause    string
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// CarouselPausedEvent is emitted when the pointer enters a carousel
type CarouselPausedEvent struct {
	Carousel string
}

func (e CarouselPausedEvent) Type() EventType { return EventCarouselPaused }

// CarouselResumedEvent is emitted when the pointer leaves a carousel
type CarouselResumedEvent struct {
	Carousel string
}

func (e CarouselResumedEvent) Type() EventType { return EventCarouselResumed }

// CarouselStoppedEvent is emitted when a carousel is unmounted
type CarouselStoppedEvent struct {
	Carousel string
}

func (e CarouselStoppedEvent) Type() EventType { return EventCarouselStopped }

// RegionRevealedEvent is emitted the first time a section scrolls into view
type RegionRevealedEvent struct {
	Region string
}

func (e RegionRevealedEvent) Type() EventType { return EventRegionRevealed }

// DocumentOpenedEvent is emitted when a supporting document is opened
type DocumentOpenedEvent struct {
	Carousel string
	Title    string
}

func (e DocumentOpenedEvent) Type() EventType { return EventDocumentOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the UI has rendered its first frame
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
