package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
)

// maxDots is the widest page count still shown as dots
const maxDots = 20

// RenderPagination renders the pager: previous/next hints around page dots
func (r *Renderer) RenderPagination(currentPage, pageCount int, prevPath, nextPath string) string {
	if pageCount < 1 {
		pageCount = 1
	}

	p := paginator.New()
	p.TotalPages = pageCount
	p.Page = currentPage - 1
	if pageCount > maxDots {
		p.Type = paginator.Arabic
	} else {
		p.Type = paginator.Dots
		p.ActiveDot = r.styles.Title.Render("●")
		p.InactiveDot = r.styles.Dim.Render("○")
	}

	parts := []string{}
	if currentPage > 1 {
		parts = append(parts, r.styles.Pager.Render("‹ p "+prevPath))
	}
	parts = append(parts, p.View())
	if currentPage < pageCount {
		parts = append(parts, r.styles.Pager.Render(nextPath+" n ›"))
	}
	parts = append(parts, r.styles.Dim.Render(fmt.Sprintf("page %d of %d", currentPage, pageCount)))

	return strings.Join(parts, "  ")
}
