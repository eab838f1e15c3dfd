package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"schemegrip/internal/config"
	"schemegrip/internal/domain"
	"schemegrip/internal/ui/coordinator"
	"schemegrip/internal/ui/state"
	"schemegrip/internal/ui/viewmodels"
	"schemegrip/internal/ui/views"
)

// RenderPage renders a loaded page once, without a terminal: every card
// is shown and there is no cursor.
func RenderPage(cfg *config.Config, path string, data domain.PageData, width int) string {
	if width <= 0 {
		width = 120
	}

	appState := state.NewAppState(path)
	appState.CompleteRequest(appState.Path)

	coord := coordinator.NewCoordinator(nil)
	coord.Load(data)
	coord.SetGrid(views.GridColumns(width-4, cfg.UISettings.CardWidth), 0)

	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = ""

	vm := viewmodels.NewViewModel(appState, coord, cfg, ti)
	vm.SetDimensions(width, 0)

	return views.NewRenderer().RenderStatic(vm.BuildPageView())
}
