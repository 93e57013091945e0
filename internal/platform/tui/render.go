package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ansiColors assigns each screen color a terminal color number.
// ColorDefault has no entry and keeps the terminal's own foreground.
var ansiColors = map[core.Color]string{
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
	core.ColorTeal:          "74",
	core.ColorSky:           "39",
}

// colorPalette builds a foreground style for every screen color.
func colorPalette() map[core.Color]lipgloss.Style {
	palette := make(map[core.Color]lipgloss.Style, len(ansiColors))
	for c, code := range ansiColors {
		palette[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return palette
}

// RenderScreen converts a Screen into text styled with the current theme.
// Each run of equally colored cells in a row is styled once, which keeps
// the escape sequences per frame low for sparse vector scenes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		pen := s.GetCell(0, y).Color
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != pen {
				sb.WriteString(theme.cellStyle(pen).Render(string(run)))
				run = run[:0]
				pen = cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(theme.cellStyle(pen).Render(string(run)))
		}
	}
	return sb.String()
}
