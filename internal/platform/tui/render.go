package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/marble-maze/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorWall:        lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorVortex:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorStar:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorFinish:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	core.ColorPlayerDying: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	core.ColorOverlay:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Bold(true),
	core.ColorFloor:       lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into same-color runs so one escape sequence covers a run.
func RenderScreen(s *core.Screen) string {
	var out, run strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		current := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if x > 0 && cell.Color != current {
				out.WriteString(styleFor(current).Render(run.String()))
				run.Reset()
			}
			current = cell.Color
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			out.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
	}
	return out.String()
}
