package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Theme contains the visual styles of the game frame and the screens around it.
type Theme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style

	// Scoreboard styles
	Frame         lipgloss.TerminalColor
	ScoreSelected lipgloss.Style

	// Palette styles game cells by screen color. Colors missing from it
	// are drawn plain.
	Palette map[core.Color]lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuControls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Frame:         lipgloss.Color("240"),
		ScoreSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),

		Palette: colorPalette(),
	}
}

// MonochromeTheme returns a theme without colors, for terminals that lack
// them or players who prefer plain text. The game frame is drawn uncolored.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemNormal = lipgloss.NewStyle()
	theme.MenuItemActive = lipgloss.NewStyle().Bold(true).Underline(true)
	theme.MenuDescription = lipgloss.NewStyle()
	theme.MenuControls = lipgloss.NewStyle().Faint(true)
	theme.Frame = lipgloss.NoColor{}
	theme.ScoreSelected = lipgloss.NewStyle().Reverse(true)
	theme.Palette = nil
	return theme
}

// Global theme variable (set once at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}

// cellStyle returns the style for game cells drawn in c.
func (t Theme) cellStyle(c core.Color) lipgloss.Style {
	if st, ok := t.Palette[c]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// menuLine renders one selectable row.
func menuLine(label string, active bool) string {
	if active {
		return theme.MenuItemActive.Render("> " + label)
	}
	return theme.MenuItemNormal.Render("  " + label)
}
