package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"schemegrip/internal/eventbus"
	"schemegrip/internal/ui/coordinator"
	"schemegrip/internal/ui/state"
)

// statusTTL is how long a status message stays in the title line
const statusTTL = 4 * time.Second

// ClearStatusMsg clears the status message with the given id
type ClearStatusMsg struct {
	ID int
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state       *state.AppState
	coord       *coordinator.Coordinator
	requestPage func(path string) tea.Cmd
	onVisit     func() tea.Cmd
}

// NewEventHandler creates a new event handler. requestPage asks the loader for
// a page; onVisit runs after a new page visit has been loaded.
func NewEventHandler(appState *state.AppState, coord *coordinator.Coordinator, requestPage func(string) tea.Cmd, onVisit func() tea.Cmd) *EventHandler {
	return &EventHandler{
		state:       appState,
		coord:       coord,
		requestPage: requestPage,
		onVisit:     onVisit,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.PageLoadedEvent:
		if !h.state.IsCurrent(e.Seq) {
			zap.L().Debug("ui: dropping stale page", zap.String("path", e.Path), zap.Int("seq", e.Seq))
			return nil
		}
		if h.state.CompleteRequest(e.Path) {
			h.coord.Load(e.Data)
			if h.onVisit != nil {
				return h.onVisit()
			}
			return nil
		}
		h.coord.Reload(e.Data)

	case eventbus.ErrorEvent:
		if e.Seq != 0 && !h.state.IsCurrent(e.Seq) {
			return nil
		}
		h.state.FailRequest()
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		id := h.state.SetStatus("Error: "+msg, true)
		return ClearStatusAfter(id)

	case eventbus.CatalogChangedEvent:
		if !h.state.Loaded {
			return nil
		}
		id := h.state.SetStatus("Catalog changed, reloading", false)
		return tea.Batch(h.requestPage(h.state.Path), ClearStatusAfter(id))
	}

	return nil
}

// ClearStatusAfter clears status id once it has been shown long enough
func ClearStatusAfter(id int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
