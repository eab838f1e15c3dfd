package search

import "schemegrip/internal/domain"

// Phase is where the displayed list comes from
type Phase int

const (
	// PhaseInitial is a fresh page that has never shown search results
	PhaseInitial Phase = iota
	// PhaseDefault is the paginated list, restored after a search was cleared
	PhaseDefault
	// PhaseFiltered is the full catalog filtered by the debounced query
	PhaseFiltered
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseDefault:
		return "default"
	case PhaseFiltered:
		return "filtered"
	default:
		return "unknown"
	}
}

// State holds search state
type State struct {
	Input       string // raw text box value
	Debounced   string // last value delivered by the debouncer
	Focused     bool
	HasSearched bool
	Phase       Phase
	Page        []domain.Repository // paginated default list
	All         []domain.Repository // full catalog, same order
	Displayed   []domain.Repository
}

// Event types
type AppliedEvent struct {
	Query      string
	MatchCount int
}

func (AppliedEvent) Topic() string { return "search.applied" }

type ClearedEvent struct{}

func (ClearedEvent) Topic() string { return "search.cleared" }

type FocusChangedEvent struct {
	Focused bool
}

func (FocusChangedEvent) Topic() string { return "search.focus" }
