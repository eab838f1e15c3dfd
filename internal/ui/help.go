package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// keyMap describes the bindings of the page for the help line and popup.
// Input modes do the actual key matching.
type keyMap struct {
	Move    key.Binding
	Top     key.Binding
	Next    key.Binding
	Prev    key.Binding
	Tabs    key.Binding
	Tab     key.Binding
	Search  key.Binding
	Open    key.Binding
	Browser key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
	Submit  key.Binding
	Cancel  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move:    key.NewBinding(key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"), key.WithHelp("←↓↑→/hjkl", "move")),
		Top:     key.NewBinding(key.WithKeys("g", "G", "home", "end"), key.WithHelp("gg/G", "first/last")),
		Next:    key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n", "next page")),
		Prev:    key.NewBinding(key.WithKeys("p", "["), key.WithHelp("p", "prev page")),
		Tabs:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "sort")),
		Tab:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next sort")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Browser: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open on GitHub")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Search, k.Next, k.Prev, k.Tab, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Top, k.Open, k.Browser},
		{k.Next, k.Prev, k.Tabs, k.Tab},
		{k.Search, k.Submit, k.Cancel},
		{k.Refresh, k.Help, k.Quit},
	}
}

// searchKeyMap is shown while typing in the search box
type searchKeyMap struct {
	keys keyMap
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.keys.Submit, k.keys.Cancel}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return k.keys.FullHelp()
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

var helpSections = []string{"Cards", "Pages", "Search", "Other"}

// RenderHelpContent renders the help popup from the full key map
func (r *HelpRenderer) RenderHelpContent(keys keyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("SchemeGrip Help"))
	help.WriteString("\n")

	for i, column := range keys.FullHelp() {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(helpSections[i]))
		help.WriteString("\n")
		for _, b := range column {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", h.Key)), descStyle.Render(h.Desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}
