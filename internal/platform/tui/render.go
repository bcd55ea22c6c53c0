package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Every style paints the
// palette background so the board reads as one dark square.
var colorStyles = func() map[core.Color]lipgloss.Style {
	bg := lipgloss.Color(core.ColorBackground.ANSI())
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorBackground; c <= core.ColorScoreNumber; c++ {
		styles[c] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.ANSI())).
			Background(bg)
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorBackground]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
