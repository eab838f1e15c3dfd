package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SubmitTextAction leaves the search box with enter; the text stays
type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// CancelTextAction leaves the search box with esc; the text stays
type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Page actions
type ChangePageAction struct {
	Delta int // +1 next, -1 previous
}

func (a ChangePageAction) Type() string { return "change_page" }

type SelectTabAction struct {
	Index int
}

func (a SelectTabAction) Type() string { return "select_tab" }

type CycleTabAction struct {
	Delta int
}

func (a CycleTabAction) Type() string { return "cycle_tab" }

// Card actions
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type OpenBrowserAction struct{}

func (a OpenBrowserAction) Type() string { return "open_browser" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
