package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"schemegrip/internal/domain"
)

// GridColumns returns how many cards of cardWidth fit in width
func GridColumns(width, cardWidth int) int {
	if cardWidth < MinCardWidth {
		cardWidth = MinCardWidth
	}
	cols := (width + 1) / (cardWidth + 1) // one cell gap between cards
	if cols < 1 {
		cols = 1
	}
	return cols
}

// GridRows returns how many card rows fit in height
func GridRows(height int) int {
	rows := height / CardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// GridProps describes the visible part of the card grid
type GridProps struct {
	Repositories   []domain.Repository
	Columns        int
	CardWidth      int
	Cursor         int
	CursorVisible  bool
	ViewportOffset int // first visible row
	ViewportRows   int
	Query          string
	ShowImages     bool
}

// GridRenderer lays cards out in rows
type GridRenderer struct {
	styles *Styles
	cards  *CardRenderer
}

// NewGridRenderer creates a new grid renderer
func NewGridRenderer(styles *Styles, cards *CardRenderer) *GridRenderer {
	return &GridRenderer{
		styles: styles,
		cards:  cards,
	}
}

// RenderGrid renders the rows of the grid inside the viewport
func (g *GridRenderer) RenderGrid(p GridProps) string {
	if len(p.Repositories) == 0 {
		return ""
	}

	cols := p.Columns
	if cols < 1 {
		cols = 1
	}
	totalRows := (len(p.Repositories) + cols - 1) / cols

	first := p.ViewportOffset
	if first < 0 {
		first = 0
	}
	last := totalRows
	if p.ViewportRows > 0 && first+p.ViewportRows < last {
		last = first + p.ViewportRows
	}

	var lines []string
	if first > 0 {
		lines = append(lines, g.styles.Scroll.Render(fmt.Sprintf("↑ %d more %s above ↑", first, plural(first, "row"))))
	}

	for row := first; row < last; row++ {
		cards := make([]string, 0, cols*2)
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(p.Repositories) {
				break
			}
			if col > 0 {
				cards = append(cards, " ")
			}
			cards = append(cards, g.cards.RenderCard(CardProps{
				Repository: p.Repositories[i],
				Selected:   p.CursorVisible && i == p.Cursor,
				Width:      p.CardWidth,
				Query:      p.Query,
				ShowImages: p.ShowImages,
			}))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if below := totalRows - last; below > 0 {
		lines = append(lines, g.styles.Scroll.Render(fmt.Sprintf("↓ %d more %s below ↓", below, plural(below, "row"))))
	}

	return strings.Join(lines, "\n")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
