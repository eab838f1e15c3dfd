package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over the main content, dimming what is left visible
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	for i, popupLine := range strings.Split(styledPopup, "\n") {
		plain := []rune(ansiRE.ReplaceAllString(base[y+i], ""))
		for len(plain) < x+modalW {
			plain = append(plain, ' ')
		}
		left := string(plain[:x])
		right := string(plain[x+modalW:])
		base[y+i] = pr.styles.Dim.Render(left) + popupLine + pr.styles.Dim.Render(right)
	}

	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = gray.Render(line)
	}
	return strings.Join(lines, "\n")
}

// StripANSI returns s without color/style codes
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
