package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested  EventType = "PageRequested"
	EventPageLoaded     EventType = "PageLoaded"
	EventCatalogChanged EventType = "CatalogChanged"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent asks the catalog loader for the page at Path
type PageRequestedEvent struct {
	Seq  int // request sequence, echoed back so stale loads can be dropped
	Path string
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PageLoadedEvent carries a loaded page
type PageLoadedEvent struct {
	Seq  int
	Path string
	Data PageData
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// CatalogChangedEvent is emitted when the underlying catalog changed on disk
type CatalogChangedEvent struct {
	Source string
}

func (e CatalogChangedEvent) Type() EventType { return EventCatalogChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Seq     int
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
