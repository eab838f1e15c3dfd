package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Intro         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Caption       lipgloss.Style
	CaptionTotal  lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	SearchBox     lipgloss.Style
	SearchFocused lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardName      lipgloss.Style
	CardOwner     lipgloss.Style
	Stars         lipgloss.Style
	WeekStars     lipgloss.Style
	Pager         lipgloss.Style
	HelpBox       lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Intro: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:   lipgloss.NewStyle().Faint(true),
		Help:  lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Caption:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CaptionTotal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")).
			Bold(true).
			Padding(0, 1),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardName:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		CardOwner: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Stars:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		WeekStars: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Pager:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
	}
}
