package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"schemegrip/internal/ui/input/types"
)

// SearchMode edits the name filter. Leaving it with esc or enter keeps the text.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
