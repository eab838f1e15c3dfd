package ui

import (
	"schemegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// debouncedMsg carries a search value once typing has settled
type debouncedMsg struct {
	query string
}
