package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"schemegrip/internal/domain"
)

// PageView contains all the state needed for rendering a repositories page
type PageView struct {
	Width  int
	Height int

	Title    string // "<label> <platform> color schemes"
	Platform string

	Actions []domain.Action
	Active  domain.Action

	SearchBox     string // rendered text input
	SearchFocused bool
	Query         string // debounced query, empty when not searching

	Caption      string
	Repositories []domain.Repository

	Cursor         int
	CursorVisible  bool
	ViewportOffset int
	ViewportRows   int
	Columns        int
	CardWidth      int
	ShowImages     bool

	CurrentPage int
	PageCount   int
	PrevPath    string
	NextPath    string

	Loading       bool
	StatusMessage string
	StatusIsError bool

	ShowHelp    bool
	HelpContent string
	HelpLine    string
}

// Searching reports whether search results replace the paginated list
func (v PageView) Searching() bool {
	return v.Query != ""
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	gridRender  *GridRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	cards := NewCardRenderer(styles)
	return &Renderer{
		styles:      styles,
		cardRender:  cards,
		gridRender:  NewGridRenderer(styles, cards),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Cards returns the card renderer
func (r *Renderer) Cards() *CardRenderer {
	return r.cardRender
}

// ChromeHeight is how many lines the page uses around the grid,
// scroll indicators included
const ChromeHeight = 17

// Render produces the complete view
func (r *Renderer) Render(v PageView) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(v))
	content.WriteString("\n")
	content.WriteString(r.styles.Intro.Render(r.intro(v.Platform)))
	content.WriteString("\n\n")

	content.WriteString(r.RenderActionRow(v))
	content.WriteString("\n")

	// Search results are not paginated
	if !v.Searching() && v.Caption != "" {
		content.WriteString(r.renderCaption(v.Caption))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	if len(v.Repositories) == 0 {
		content.WriteString(r.styles.Dim.Render(r.emptyMessage(v)))
	} else {
		content.WriteString(r.gridRender.RenderGrid(GridProps{
			Repositories:   v.Repositories,
			Columns:        v.Columns,
			CardWidth:      v.CardWidth,
			Cursor:         v.Cursor,
			CursorVisible:  v.CursorVisible,
			ViewportOffset: v.ViewportOffset,
			ViewportRows:   v.ViewportRows,
			Query:          v.Query,
			ShowImages:     v.ShowImages,
		}))
	}
	content.WriteString("\n")

	if !v.Searching() {
		content.WriteString("\n")
		content.WriteString(r.RenderPagination(v.CurrentPage, v.PageCount, v.PrevPath, v.NextPath))
	}

	if v.HelpLine != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Help.Render(v.HelpLine))
	}

	mainStyle := r.styles.Main
	if v.Height > 0 {
		mainStyle = mainStyle.MaxHeight(v.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if v.ShowHelp && v.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, v.HelpContent, v.Height, v.Width, r.styles.HelpBox)
	}

	return finalContent
}

// RenderStatic renders a page for non-interactive output: no cursor, no help
func (r *Renderer) RenderStatic(v PageView) string {
	v.CursorVisible = false
	v.ShowHelp = false
	v.HelpLine = ""
	v.Height = 0
	v.ViewportRows = 0
	v.ViewportOffset = 0
	return r.Render(v)
}

func (r *Renderer) renderTitleLine(v PageView) string {
	title := r.styles.Title.Render(v.Title)

	right := ""
	switch {
	case v.Loading:
		right = r.styles.StatusLoading.Render("⋯ loading")
	case v.StatusMessage != "" && v.StatusIsError:
		right = r.styles.StatusError.Render(v.StatusMessage)
	case v.StatusMessage != "":
		right = r.styles.Dim.Render(v.StatusMessage)
	}
	if right == "" {
		return title
	}

	// Use a default width if v.Width is not set
	termWidth := v.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(title) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return title + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderCaption(caption string) string {
	// "<start> - <end> out of <total> repositories" with the total emphasized
	if i := strings.Index(caption, " out of "); i >= 0 {
		rest := caption[i+len(" out of "):]
		if j := strings.Index(rest, " "); j >= 0 {
			return r.styles.Caption.Render(caption[:i+len(" out of ")]) +
				r.styles.CaptionTotal.Render(rest[:j]) +
				r.styles.Caption.Render(rest[j:])
		}
	}
	return r.styles.Caption.Render(caption)
}

func (r *Renderer) intro(platform string) string {
	if platform == "" {
		return "Browse color schemes, ranked by their GitHub stars."
	}
	return fmt.Sprintf("Browse %s color schemes, ranked by their GitHub stars.", platform)
}

func (r *Renderer) emptyMessage(v PageView) string {
	if v.Loading {
		return "Loading repositories..."
	}
	if v.Searching() {
		return fmt.Sprintf("No repositories match %q.", v.Query)
	}
	return "No repositories found."
}
