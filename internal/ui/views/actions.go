package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"schemegrip/internal/domain"
)

// RenderActions renders the action tabs with the active one highlighted.
// Tabs are numbered by their shortcut key.
func (r *Renderer) RenderActions(actions []domain.Action, active domain.Action) string {
	tabs := make([]string, 0, len(actions))
	for i, action := range actions {
		label := string(rune('1'+i)) + " " + action.Label
		if action.Route == active.Route {
			tabs = append(tabs, r.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, r.styles.Tab.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

// RenderSearchBox renders the search input box
func (r *Renderer) RenderSearchBox(input string, focused bool, width int) string {
	style := r.styles.SearchBox
	if focused {
		style = r.styles.SearchFocused
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render("/ " + input)
}

// RenderActionRow puts the search box and the action tabs side by side,
// stacking them when the terminal is too narrow.
func (r *Renderer) RenderActionRow(v PageView) string {
	box := r.RenderSearchBox(v.SearchBox, v.SearchFocused, searchBoxWidth)
	tabs := r.RenderActions(v.Actions, v.Active)

	if v.Width > 0 && lipgloss.Width(box)+2+lipgloss.Width(tabs) > v.Width-4 {
		return lipgloss.JoinVertical(lipgloss.Left, box, tabs)
	}
	// Vertically center the tabs on the bordered box
	return lipgloss.JoinHorizontal(lipgloss.Center, box, "  ", tabs)
}

const searchBoxWidth = 32
