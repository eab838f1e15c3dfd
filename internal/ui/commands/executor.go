package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"schemegrip/internal/eventbus"
	"schemegrip/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteRequestPage creates and executes a page request command
func (e *Executor) ExecuteRequestPage(path string) tea.Cmd {
	cmd := NewRequestPageCommand(e.ctx, path)
	return cmd.Execute()
}

// ExecuteRefresh creates and executes a refresh command
func (e *Executor) ExecuteRefresh() tea.Cmd {
	cmd := NewRefreshCommand(e.ctx)
	return cmd.Execute()
}
