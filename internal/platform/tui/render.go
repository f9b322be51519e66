package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// styleCache maps cell colors to lipgloss styles.
// Game colors are random, so styles are built on first use.
type styleCache map[core.RGB]lipgloss.Style

func (c styleCache) get(rgb core.RGB) lipgloss.Style {
	if style, ok := c[rgb]; ok {
		return style
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgb.Hex()))
	c[rgb] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
