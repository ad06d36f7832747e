package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Palette maps core.Color to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the color styles for a renderer. SSH sessions pass
// their own renderer so color detection follows the client terminal.
func NewPalette(r *lipgloss.Renderer) Palette {
	style := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		core.ColorDefault:   r.NewStyle(),
		core.ColorRed:       style("1"),
		core.ColorGreen:     style("10"),
		core.ColorDarkGreen: style("2"),
		core.ColorYellow:    style("3"),
		core.ColorBlue:      style("12"),
		core.ColorWhite:     style("15"),
		core.ColorOrange:    style("208"),
		core.ColorGray:      style("245"),
	}
}

var defaultPalette = NewPalette(lipgloss.DefaultRenderer())

// RenderScreen converts a Screen buffer to a styled string using the
// process's default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

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

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
