package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"schemegrip/internal/eventbus"
	"schemegrip/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

// RequestPageCommand asks the catalog loader for a page
type RequestPageCommand struct {
	ctx  *CommandContext
	path string
}

// NewRequestPageCommand creates a new page request command
func NewRequestPageCommand(ctx *CommandContext, path string) *RequestPageCommand {
	return &RequestPageCommand{
		ctx:  ctx,
		path: path,
	}
}

// Execute records the request and publishes it. The answer arrives as a
// PageLoadedEvent or ErrorEvent carrying the same sequence number.
func (c *RequestPageCommand) Execute() tea.Cmd {
	seq := c.ctx.State.BeginRequest(c.path)
	zap.L().Debug("ui: requesting page", zap.String("path", c.path), zap.Int("seq", seq))
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.PageRequestedEvent{
			Seq:  seq,
			Path: c.path,
		})
	}
	return nil
}

// RefreshCommand reloads the current page, keeping the search
type RefreshCommand struct {
	ctx *CommandContext
}

// NewRefreshCommand creates a new refresh command
func NewRefreshCommand(ctx *CommandContext) *RefreshCommand {
	return &RefreshCommand{ctx: ctx}
}

// Execute performs the refresh operation
func (c *RefreshCommand) Execute() tea.Cmd {
	return NewRequestPageCommand(c.ctx, c.ctx.State.Path).Execute()
}
