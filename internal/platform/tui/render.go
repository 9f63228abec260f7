package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// palette holds the ANSI colour code for each core.Color.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// cellStyles is built once from palette. Bright white and bright yellow
// carry the HUD and overlays, so they are drawn bold.
var cellStyles = buildCellStyles()

func buildCellStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		if c == core.ColorBrightWhite || c == core.ColorBrightYellow {
			st = st.Bold(true)
		}
		styles[c] = st
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a colour are rendered as one styled run.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	run := make([]rune, 0, w)
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(string(run))
				continue
			}
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}
