package coordinator

import (
	"schemegrip/internal/domain"
	"schemegrip/internal/ui/services/events"
	"schemegrip/internal/ui/services/navigation"
	"schemegrip/internal/ui/services/search"
)

// Navigator is the keyboard-selection collaborator the page keeps in sync
// with the displayed list. The page only resets or disables it.
type Navigator interface {
	Reset()
	Disable()
}

// Coordinator manages the page services and their interactions
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Search     *search.Service

	// Dependencies
	bus       events.EventBus
	navigator Navigator
	data      domain.PageData
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus events.EventBus) *Coordinator {
	if bus == nil {
		bus = events.NewBus()
	}
	c := &Coordinator{
		Navigation: navigation.NewService(bus),
		Search:     search.NewService(bus),
		bus:        bus,
	}
	c.navigator = c.Navigation

	// Subscribe to events
	c.subscribeToEvents()

	return c
}

// SetNavigator replaces the collaborator that receives resets
func (c *Coordinator) SetNavigator(nav Navigator) {
	c.navigator = nav
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	c.bus.Subscribe(search.AppliedEvent{}.Topic(), func(e interface{}) {
		c.displayedChanged()
	})

	c.bus.Subscribe(search.ClearedEvent{}.Topic(), func(e interface{}) {
		c.displayedChanged()
	})

	c.bus.Subscribe(search.FocusChangedEvent{}.Topic(), func(e interface{}) {
		if e.(search.FocusChangedEvent).Focused {
			c.navigator.Disable()
			return
		}
		// Blurring with an empty box, or after the list diverged while typing
		if c.Search.Input() == "" || !c.Search.IsInitialLoad() {
			c.navigator.Reset()
		}
	})
}

// displayedChanged keeps navigation in step with the displayed list
func (c *Coordinator) displayedChanged() {
	c.Navigation.SetItemCount(len(c.Search.Displayed()))
	if c.Search.IsInitialLoad() || c.Search.Focused() {
		return
	}
	c.navigator.Reset()
}

// Load starts a new page visit
func (c *Coordinator) Load(data domain.PageData) {
	c.data = data
	c.Search.Reset(data)
	c.Navigation.Mount(len(c.Search.Displayed()))
}

// Reload refreshes the data of the current page visit
func (c *Coordinator) Reload(data domain.PageData) {
	c.data = data
	c.Search.Reload(data)
	c.displayedChanged()
}

// Data returns the page data of the current visit
func (c *Coordinator) Data() domain.PageData {
	return c.data
}

// Type records a keystroke in the search box
func (c *Coordinator) Type(input string) {
	c.Search.SetInput(input)
}

// ApplyDebounced applies a debounced query; see search.Service.ApplyDebounced
func (c *Coordinator) ApplyDebounced(query string) bool {
	return c.Search.ApplyDebounced(query)
}

// Focus moves the keyboard into the search box
func (c *Coordinator) Focus() {
	c.Search.SetFocus(true)
}

// Blur moves the keyboard back to the grid
func (c *Coordinator) Blur() {
	c.Search.SetFocus(false)
}

// Displayed returns the cards to render
func (c *Coordinator) Displayed() []domain.Repository {
	return c.Search.Displayed()
}

// GetCurrentRepository returns the repository under the cursor
func (c *Coordinator) GetCurrentRepository() (domain.Repository, bool) {
	displayed := c.Search.Displayed()
	index := c.Navigation.GetCursor()
	if !c.Navigation.Enabled() || index < 0 || index >= len(displayed) {
		return domain.Repository{}, false
	}
	return displayed[index], true
}

// SetGrid updates the grid geometry across services
func (c *Coordinator) SetGrid(columns, rows int) {
	c.Navigation.SetColumns(columns)
	c.Navigation.SetViewportHeight(rows)
}
