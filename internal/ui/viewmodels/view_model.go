package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"schemegrip/internal/catalog"
	"schemegrip/internal/config"
	"schemegrip/internal/domain"
	"schemegrip/internal/ui/coordinator"
	"schemegrip/internal/ui/logic"
	"schemegrip/internal/ui/state"
	"schemegrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	coord            *coordinator.Coordinator
	config           *config.Config
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	helpContent      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, coord *coordinator.Coordinator, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		coord:            coord,
		config:           cfg,
		help:             help.New(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width - 4
}

// SetHelp sets the key map shown in the help line and the help popup
func (vm *ViewModel) SetHelp(keys help.KeyMap, content string) {
	vm.keys = keys
	vm.helpContent = content
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// ActiveAction returns the action selected by the current path
func (vm *ViewModel) ActiveAction() domain.Action {
	return logic.ResolveActiveAction(vm.state.Path, domain.Actions, domain.DefaultAction)
}

// Platform returns the platform of the loaded page, falling back to config
func (vm *ViewModel) Platform() string {
	if p := vm.coord.Data().Platform; p != "" {
		return p
	}
	return vm.config.Platform
}

// Title returns "<label> <platform> color schemes"
func (vm *ViewModel) Title() string {
	return Title(vm.ActiveAction(), vm.Platform())
}

// Title formats a page title
func Title(action domain.Action, platform string) string {
	if platform == "" {
		return action.Label + " color schemes"
	}
	return fmt.Sprintf("%s %s color schemes", action.Label, platform)
}

// BuildPageView creates a PageView for rendering
func (vm *ViewModel) BuildPageView() views.PageView {
	data := vm.coord.Data()
	active := vm.ActiveAction()
	nav := vm.coord.Navigation
	search := vm.coord.Search

	cardWidth := vm.config.UISettings.CardWidth
	if cardWidth < views.MinCardWidth {
		cardWidth = views.MinCardWidth
	}

	currentPage := data.Context.CurrentPage
	pageCount := data.Context.PageCount
	if currentPage < 1 {
		currentPage, pageCount = 1, catalog.PageCount(data.TotalCount, vm.config.PageSize)
	}

	caption := ""
	if data.TotalCount > 0 {
		caption = logic.RangeCaption(currentPage, pageCount, data.TotalCount, vm.config.PageSize)
	}

	prevPath, nextPath := "", ""
	if currentPage > 1 {
		prevPath = catalog.PagePath(active, currentPage-1)
	}
	if currentPage < pageCount {
		nextPath = catalog.PagePath(active, currentPage+1)
	}

	v := views.PageView{
		Width:          vm.width,
		Height:         vm.height,
		Title:          Title(active, vm.Platform()),
		Platform:       vm.Platform(),
		Actions:        domain.Actions,
		Active:         active,
		SearchBox:      vm.inputTransformer.GetInputText(),
		SearchFocused:  search.Focused(),
		Query:          search.Debounced(),
		Caption:        caption,
		Repositories:   vm.coord.Displayed(),
		Cursor:         nav.GetCursor(),
		CursorVisible:  nav.Enabled(),
		ViewportOffset: nav.GetViewportOffset(),
		ViewportRows:   nav.GetViewportHeight(),
		Columns:        nav.GetColumns(),
		CardWidth:      cardWidth,
		ShowImages:     vm.config.UISettings.ShowImages,
		CurrentPage:    currentPage,
		PageCount:      pageCount,
		PrevPath:       prevPath,
		NextPath:       nextPath,
		Loading:        vm.state.Loading,
		StatusMessage:  vm.state.StatusMessage,
		StatusIsError:  vm.state.StatusIsError,
		ShowHelp:       vm.state.ShowHelp,
		HelpContent:    vm.helpContent,
	}
	if vm.keys != nil {
		v.HelpLine = vm.help.ShortHelpView(vm.keys.ShortHelp())
	}
	return v
}
