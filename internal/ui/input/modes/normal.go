package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"schemegrip/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.CycleTabAction{Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.CycleTabAction{Delta: -1}}, true

	case tea.KeyEnter:
		if ctx.HasCurrent() {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "n", "]":
		// Search results are not paginated
		if !ctx.IsSearching() && ctx.CurrentPage() < ctx.PageCount() {
			return []types.Action{types.ChangePageAction{Delta: 1}}, true
		}
		return nil, true

	case "p", "[":
		if !ctx.IsSearching() && ctx.CurrentPage() > 1 {
			return []types.Action{types.ChangePageAction{Delta: -1}}, true
		}
		return nil, true

	case "1", "2", "3", "4":
		return []types.Action{types.SelectTabAction{Index: int(msg.String()[0] - '1')}}, true

	case "o":
		if ctx.HasCurrent() {
			return []types.Action{types.OpenBrowserAction{}}, true
		}
		return nil, false

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
