package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"schemegrip/internal/catalog"
	"schemegrip/internal/config"
	"schemegrip/internal/debounce"
	"schemegrip/internal/domain"
	"schemegrip/internal/eventbus"
	"schemegrip/internal/ui/commands"
	"schemegrip/internal/ui/coordinator"
	"schemegrip/internal/ui/handlers"
	"schemegrip/internal/ui/input"
	inputtypes "schemegrip/internal/ui/input/types"
	"schemegrip/internal/ui/logic"
	"schemegrip/internal/ui/services/navigation"
	"schemegrip/internal/ui/state"
	"schemegrip/internal/ui/viewmodels"
	"schemegrip/internal/ui/views"
)

// Model represents the UI state of one repositories page
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // routing, requests and status

	// UI-specific state not in AppState
	width       int
	height      int
	keys        keyMap
	helpContent string
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	coord        *coordinator.Coordinator // search and navigation services
	renderer     *views.Renderer          // view renderer
	eventHandler *handlers.EventHandler   // event processing handler
	viewModel    *viewmodels.ViewModel    // view model for rendering
	cmdExecutor  *commands.Executor       // command executor
	inputHandler *input.Handler           // input handling
	pager        *PagerOps                // detail pager and browser
	debouncer    *debounce.Debouncer[string]

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model starting at path
func NewModel(bus eventbus.EventBus, cfg *config.Config, path string) *Model {
	appState := state.NewAppState(path)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		keys:         newKeyMap(),
		coord:        coordinator.NewCoordinator(nil),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
		debouncer:    debounce.New[string](cfg.SearchDebounce()),
	}

	m.cmdExecutor = commands.NewExecutor(appState, bus)
	m.eventHandler = handlers.NewEventHandler(appState, m.coord, m.requestPage, m.onVisit)

	m.viewModel = viewmodels.NewViewModel(appState, m.coord, cfg, *m.inputHandler.TextInput())
	m.helpContent = NewHelpRenderer().RenderHelpContent(m.keys)
	m.viewModel.SetHelp(m.keys, m.helpContent)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pager != nil {
		m.pager.SetProgram(p)
	}
}

// Init requests the first page and starts listening for search values
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.requestPage(m.state.Path), m.waitForDebounced())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.updateGrid()

	case tea.KeyMsg:
		// The help popup swallows keys until it is closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, m.quit()
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		m.viewModel.SetInputMode(viewmodels.InputModeSearch)
		m.viewModel.SetHelp(searchKeyMap{keys: m.keys}, m.helpContent)
	default:
		m.viewModel.SetInputMode(viewmodels.InputModeNormal)
		m.viewModel.SetHelp(m.keys, m.helpContent)
	}
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())

	return m.renderer.Render(m.viewModel.BuildPageView())
}

// inputContext snapshots what the input modes need to decide on a key
func (m *Model) inputContext() input.ModelContext {
	_, hasCurrent := m.coord.GetCurrentRepository()
	pc := m.coord.Data().Context
	return input.ModelContext{
		Index:   m.coord.Navigation.GetCursor(),
		Total:   len(m.coord.Displayed()),
		Current: hasCurrent,
		Search:  m.coord.Search.IsSearching(),
		Page:    pc.CurrentPage,
		Pages:   pc.PageCount,
	}
}

// updateGrid recomputes the card grid from the terminal size
func (m *Model) updateGrid() {
	columns := views.GridColumns(m.width-4, m.config.UISettings.CardWidth)
	rows := views.GridRows(m.height - views.ChromeHeight)
	m.coord.SetGrid(columns, rows)
}

// requestPage asks the loader for the page at path
func (m *Model) requestPage(path string) tea.Cmd {
	return m.cmdExecutor.ExecuteRequestPage(path)
}

// navigate moves to another page; the current one stays until it loads
func (m *Model) navigate(path string) tea.Cmd {
	if path == m.state.Path && m.state.Loaded {
		return nil
	}
	m.debouncer.Cancel()
	return m.requestPage(path)
}

// onVisit runs once a new page has been loaded
func (m *Model) onVisit() tea.Cmd {
	m.debouncer.Cancel()
	m.inputHandler.Reset()
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
	m.updateGrid()
	return tea.SetWindowTitle(m.viewModel.Title())
}

func (m *Model) activeAction() domain.Action {
	return logic.ResolveActiveAction(m.state.Path, domain.Actions, domain.DefaultAction)
}

// waitForDebounced delivers the next settled search value, or nothing once
// the debouncer is stopped
func (m *Model) waitForDebounced() tea.Cmd {
	ch := m.debouncer.C()
	return func() tea.Msg {
		query, ok := <-ch
		if !ok {
			return nil
		}
		return debouncedMsg{query: query}
	}
}

func (m *Model) quit() tea.Cmd {
	m.debouncer.Stop()
	return tea.Quit
}

// processAction executes one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.coord.Navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeSearch {
			m.coord.Focus()
		} else {
			m.coord.Blur()
		}

	case inputtypes.UpdateTextAction:
		m.coord.Type(a.Text)
		m.debouncer.Push(a.Text)

	case inputtypes.SubmitTextAction:
		// Enter applies what was typed without waiting for the window
		if m.debouncer.Pending() {
			m.debouncer.Flush(a.Text)
		}

	case inputtypes.CancelTextAction:
		// Leaving with esc keeps the text and lets a pending value land

	case inputtypes.ChangePageAction:
		pc := m.coord.Data().Context
		page := pc.CurrentPage + a.Delta
		if page < 1 || page > pc.PageCount {
			return nil
		}
		return m.navigate(catalog.PagePath(m.activeAction(), page))

	case inputtypes.SelectTabAction:
		if a.Index < 0 || a.Index >= len(domain.Actions) {
			return nil
		}
		return m.navigate(catalog.PagePath(domain.Actions[a.Index], 1))

	case inputtypes.CycleTabAction:
		next := logic.CycleAction(domain.Actions, m.activeAction(), a.Delta)
		return m.navigate(catalog.PagePath(next, 1))

	case inputtypes.OpenDetailAction:
		repo, ok := m.coord.GetCurrentRepository()
		if !ok {
			return nil
		}
		m.inPagerMode = true
		return m.pager.showDetailCmd(repo.FullName(), m.renderer.RenderDetail(repo, m.state.Path))

	case inputtypes.OpenBrowserAction:
		repo, ok := m.coord.GetCurrentRepository()
		if !ok {
			return nil
		}
		return m.pager.openBrowserCmd(repo.GithubURL)

	case inputtypes.RefreshAction:
		return m.cmdExecutor.ExecuteRefresh()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

// handleNonKeyboardMsg processes everything but key presses
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case debouncedMsg:
		// A value typed before the box was reset no longer applies
		if msg.query == m.coord.Search.Input() {
			m.coord.ApplyDebounced(msg.query)
		}
		return m, m.waitForDebounced()

	case handlers.ClearStatusMsg:
		m.state.ClearStatus(msg.ID)
		return m, nil

	case detailPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			zap.L().Error("ui: detail pager failed", zap.String("repository", msg.name), zap.Error(msg.err))
			return m, m.status(fmt.Sprintf("Failed to show %s: %v", msg.name, msg.err), true)
		}
		return m, nil

	case browserMsg:
		if msg.err != nil {
			zap.L().Warn("ui: open browser failed", zap.String("url", msg.url), zap.Error(msg.err))
			return m, m.status(fmt.Sprintf("Failed to open browser: %v", msg.err), true)
		}
		return m, m.status("Opened "+msg.url, false)
	}

	return m, nil
}

// status shows a message in the title line and schedules its removal
func (m *Model) status(message string, isError bool) tea.Cmd {
	return handlers.ClearStatusAfter(m.state.SetStatus(message, isError))
}
