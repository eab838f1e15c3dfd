package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"schemegrip/internal/domain"
)

// RenderDetail renders the full description of a repository for the pager.
// fromPath is the page the detail was opened from.
func (r *Renderer) RenderDetail(repo domain.Repository, fromPath string) string {
	s := r.styles
	c := r.cardRender
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)

	var b strings.Builder
	if fromPath != "" {
		b.WriteString(s.Dim.Render("from: " + fromPath))
		b.WriteString("\n\n")
	}
	b.WriteString(s.Title.Render(repo.FullName()))
	b.WriteString("\n")

	description := repo.Description
	if description == "" {
		description = "No description"
	}
	b.WriteString(s.Intro.Render(description))
	b.WriteString("\n\n")

	row := func(name, value string) {
		b.WriteString(label.Render(name))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("Stars", s.Stars.Render(c.FormatCount(repo.StargazersCount)+" ★"))
	row("This week", s.WeekStars.Render(fmt.Sprintf("+%s", c.FormatCount(repo.WeekStargazersCount))))
	if !repo.CreatedAt.IsZero() {
		row("Created", repo.CreatedAt.Format("Jan 2 2006"))
	}
	if !repo.LastCommitAt.IsZero() {
		row("Last commit", repo.LastCommitAt.Format("Jan 2 2006"))
	}
	if repo.GithubURL != "" {
		row("GitHub", repo.GithubURL)
	}

	images := repo.Images
	if repo.FeaturedImage != "" {
		images = append([]string{repo.FeaturedImage}, images...)
	}
	if len(images) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Caption.Render("Screenshots"))
		b.WriteString("\n")
		for _, url := range images {
			b.WriteString("  " + url + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
