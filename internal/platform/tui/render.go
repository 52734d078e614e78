package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-match3/internal/core"
)

// Token colors follow the game's light palette; UI colors use the
// 256-color codes the rest of the interface uses.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffa726")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffee58")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("#66bb6a")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("#42a5f5")),
	core.ColorPurple:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ab47bc")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
