package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"schemegrip/internal/domain"
)

// CardLines is the number of content lines in a card; bordered cards are two taller
const CardLines = 6

// CardHeight is the rendered height of a card, borders included
const CardHeight = CardLines + 2

// MinCardWidth keeps cards readable on narrow terminals
const MinCardWidth = 24

// CardRenderer handles rendering of repository cards
type CardRenderer struct {
	styles  *Styles
	printer *message.Printer
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{
		styles:  styles,
		printer: message.NewPrinter(language.English),
	}
}

// CardProps is what a card needs to render one repository
type CardProps struct {
	Repository domain.Repository
	Selected   bool
	Width      int    // total width, borders included
	Query      string // highlighted in the name
	ShowImages bool
}

// RenderCard renders a repository card
func (c *CardRenderer) RenderCard(p CardProps) string {
	width := p.Width
	if width < MinCardWidth {
		width = MinCardWidth
	}
	inner := width - 4 // border and padding

	repo := p.Repository
	lines := make([]string, 0, CardLines)

	name := truncate(repo.Name, inner)
	if p.Query != "" && strings.Contains(name, p.Query) {
		lines = append(lines, c.highlightMatch(name, p.Query, c.styles.Highlight, c.styles.CardName))
	} else {
		lines = append(lines, c.styles.CardName.Render(name))
	}

	lines = append(lines, c.styles.CardOwner.Render(truncate("by "+repo.Owner.Name, inner)))

	description := repo.Description
	if description == "" {
		description = "No description"
	}
	lines = append(lines, c.styles.Dim.Render(truncate(description, inner)))

	stars := c.styles.Stars.Render(c.FormatCount(repo.StargazersCount) + " ★")
	if repo.WeekStargazersCount > 0 {
		stars += " " + c.styles.WeekStars.Render(truncate(fmt.Sprintf("+%s this week", c.FormatCount(repo.WeekStargazersCount)), inner-lipgloss.Width(stars)-1))
	}
	lines = append(lines, stars)

	lines = append(lines, c.styles.Dim.Render(truncate(formatDates(repo), inner)))

	lines = append(lines, c.styles.Dim.Render(truncate(c.imageLine(repo, p.ShowImages), inner)))

	style := c.styles.Card
	if p.Selected {
		style = c.styles.CardSelected
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// FormatCount formats n with thousands separators: 12345 -> "12,345"
func (c *CardRenderer) FormatCount(n int) string {
	return c.printer.Sprintf("%d", n)
}

func (c *CardRenderer) imageLine(repo domain.Repository, showImages bool) string {
	if showImages && repo.FeaturedImage != "" {
		return repo.FeaturedImage
	}
	switch n := len(repo.Images); n {
	case 0:
		return "no screenshots"
	case 1:
		return "1 screenshot"
	default:
		return c.printer.Sprintf("%d screenshots", n)
	}
}

func formatDates(repo domain.Repository) string {
	var parts []string
	if !repo.CreatedAt.IsZero() {
		parts = append(parts, "created "+repo.CreatedAt.Format("Jan 2006"))
	}
	if !repo.LastCommitAt.IsZero() {
		parts = append(parts, "updated "+repo.LastCommitAt.Format("Jan 2 2006"))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " · ")
}

// truncate shortens s to at most width cells, ending with an ellipsis when cut
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// highlightMatch highlights the first case-sensitive occurrence of query in text
func (c *CardRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	index := strings.Index(text, query)
	if index == -1 {
		return normalStyle.Render(text)
	}

	// Split the text into parts
	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	// Render with appropriate styles
	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
