package search

import (
	"go.uber.org/zap"

	"schemegrip/internal/domain"
	"schemegrip/internal/ui/logic"
	"schemegrip/internal/ui/services/events"
)

// Service owns the search box state and the list it displays
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Phase: PhaseInitial},
		bus:   bus,
	}
}

// Reset starts a fresh page visit: the text, flags and phase are cleared
// and the page list is displayed.
func (s *Service) Reset(data domain.PageData) {
	s.state = &State{
		Phase:     PhaseInitial,
		Page:      data.Repositories,
		All:       data.AllRepositories,
		Displayed: data.Repositories,
	}
}

// Reload swaps in fresh data for the current page, keeping the search
func (s *Service) Reload(data domain.PageData) {
	s.state.Page = data.Repositories
	s.state.All = data.AllRepositories

	if s.state.Phase == PhaseFiltered {
		s.state.Displayed = logic.FilterByName(s.state.All, s.state.Debounced)
	} else {
		s.state.Displayed = s.state.Page
	}
}

// SetInput records a keystroke. The displayed list only follows the
// debounced value.
func (s *Service) SetInput(input string) {
	s.state.Input = input
}

// ApplyDebounced applies a debounced query and reports whether the
// displayed list changed.
func (s *Service) ApplyDebounced(query string) bool {
	s.state.Debounced = query

	if query != "" {
		s.state.Displayed = logic.FilterByName(s.state.All, query)
		s.state.HasSearched = true
		s.state.Phase = PhaseFiltered

		zap.L().Debug("search: applied",
			zap.String("query", query),
			zap.Int("matches", len(s.state.Displayed)))
		s.bus.Publish(AppliedEvent{Query: query, MatchCount: len(s.state.Displayed)})
		return true
	}

	// Never shown results yet, or already showing the page: nothing to revert
	if s.state.Phase != PhaseFiltered {
		return false
	}

	s.state.Displayed = s.state.Page
	s.state.Phase = PhaseDefault

	zap.L().Debug("search: cleared")
	s.bus.Publish(ClearedEvent{})
	return true
}

// SetFocus records the search box focus and reports whether it changed
func (s *Service) SetFocus(focused bool) bool {
	if s.state.Focused == focused {
		return false
	}
	s.state.Focused = focused
	s.bus.Publish(FocusChangedEvent{Focused: focused})
	return true
}

// Input returns the raw text box value
func (s *Service) Input() string {
	return s.state.Input
}

// Debounced returns the query the displayed list is based on
func (s *Service) Debounced() string {
	return s.state.Debounced
}

// IsSearching reports whether search results replace the paginated list
func (s *Service) IsSearching() bool {
	return s.state.Debounced != ""
}

func (s *Service) Focused() bool {
	return s.state.Focused
}

func (s *Service) HasSearched() bool {
	return s.state.HasSearched
}

func (s *Service) Phase() Phase {
	return s.state.Phase
}

// IsInitialLoad reports whether the page still shows its first list
func (s *Service) IsInitialLoad() bool {
	return s.state.Phase == PhaseInitial
}

// Displayed returns the list to render
func (s *Service) Displayed() []domain.Repository {
	return s.state.Displayed
}
