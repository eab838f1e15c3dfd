package navigation

import (
	"schemegrip/internal/ui/services/events"
)

// Service handles keyboard navigation over the card grid
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Enabled:        true,
			Columns:        1,
			ViewportHeight: 3, // Default, will be updated
		},
		bus: bus,
	}
}

// Reset returns navigation to its default: enabled, first card, top of the grid
func (s *Service) Reset() {
	s.state.Enabled = true
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
	s.bus.Publish(ResetEvent{})
}

// Mount starts navigation over a freshly displayed page without
// publishing a reset
func (s *Service) Mount(itemCount int) {
	s.state.Enabled = true
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
	s.SetItemCount(itemCount)
}

// Disable suspends keyboard navigation; the cursor is kept but not shown
func (s *Service) Disable() {
	if !s.state.Enabled {
		return
	}
	s.state.Enabled = false
	s.bus.Publish(DisabledEvent{})
}

// Enabled reports whether navigation keys move the cursor
func (s *Service) Enabled() bool {
	return s.state.Enabled
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns the first visible grid row
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns how many grid rows fit on screen
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

func (s *Service) GetColumns() int {
	return s.state.Columns
}

// SetItemCount updates the number of displayed cards
func (s *Service) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	s.state.ItemCount = n
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()
}

// SetColumns updates how many cards fit in a grid row
func (s *Service) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	s.state.Columns = columns
	s.ensureVisible()
}

// SetViewportHeight updates how many grid rows fit on screen
func (s *Service) SetViewportHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.state.ViewportHeight = rows
	s.ensureVisible()
}

// Navigate handles navigation in a direction. It is a no-op while disabled.
func (s *Service) Navigate(direction Direction) {
	if !s.state.Enabled || s.state.ItemCount == 0 {
		return
	}

	oldCursor := s.state.Cursor
	cols := s.state.Columns
	page := s.state.ViewportHeight * cols

	switch direction {
	case DirectionUp:
		if s.state.Cursor-cols >= 0 {
			s.state.Cursor -= cols
		}
	case DirectionDown:
		if s.state.Cursor+cols < s.state.ItemCount {
			s.state.Cursor += cols
		} else if s.row(s.state.Cursor) < s.row(s.state.ItemCount-1) {
			// Partial last row: land on its last card
			s.state.Cursor = s.state.ItemCount - 1
		}
	case DirectionLeft:
		if s.state.Cursor > 0 {
			s.state.Cursor--
		}
	case DirectionRight:
		if s.state.Cursor < s.state.ItemCount-1 {
			s.state.Cursor++
		}
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - page)
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + page)
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.ItemCount - 1
	}

	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

func (s *Service) row(index int) int {
	return index / s.state.Columns
}

func (s *Service) clampIndex(index int) int {
	if index < 0 || s.state.ItemCount == 0 {
		return 0
	}
	if index > s.state.ItemCount-1 {
		return s.state.ItemCount - 1
	}
	return index
}

func (s *Service) ensureVisible() {
	row := s.row(s.state.Cursor)
	offset := s.state.ViewportOffset

	if row < offset {
		offset = row
	} else if row >= offset+s.state.ViewportHeight {
		offset = row - s.state.ViewportHeight + 1
	}

	if offset != s.state.ViewportOffset {
		s.state.ViewportOffset = offset
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}
