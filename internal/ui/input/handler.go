package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"schemegrip/internal/ui/input/modes"
	"schemegrip/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in normal mode there is nothing to do
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		if prev := h.modes[h.currentMode]; prev != nil {
			allActions = append(allActions, prev.Exit(ctx)...)
		}
		h.currentMode = changeMode.Mode
		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
		allActions = append(allActions, changeMode)
	}

	// In a text mode, keys the mode didn't handle go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// TextInput returns the shared search box model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Reset returns to normal mode with an empty search box
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
