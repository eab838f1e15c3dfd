package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
)

// InputTransformer turns the search text input into view text
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// GetInputText returns the search box content for the view.
// The box keeps showing its text after it loses focus.
func (it *InputTransformer) GetInputText() string {
	if it.mode == InputModeSearch {
		return it.textInput.View()
	}
	if v := it.textInput.Value(); v != "" {
		return v
	}
	return it.textInput.Placeholder
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeSearch:
		return "search"
	default:
		return ""
	}
}
