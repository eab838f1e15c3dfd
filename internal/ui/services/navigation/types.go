package navigation

// State holds all navigation-related state.
// The cursor indexes the displayed cards; the viewport is measured in grid rows.
type State struct {
	Enabled        bool
	Cursor         int
	ItemCount      int
	Columns        int
	ViewportOffset int
	ViewportHeight int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Event types for navigation changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

func (CursorMovedEvent) Topic() string { return "navigation.cursor" }

type ViewportChangedEvent struct {
	Offset int
	Height int
}

func (ViewportChangedEvent) Topic() string { return "navigation.viewport" }

// ResetEvent is published whenever navigation returns to its default
type ResetEvent struct{}

func (ResetEvent) Topic() string { return "navigation.reset" }

// DisabledEvent is published when keyboard navigation is suspended
type DisabledEvent struct{}

func (DisabledEvent) Topic() string { return "navigation.disabled" }
