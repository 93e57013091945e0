package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.SetPen(core.ColorOrange)
	s.DrawText(1, 0, "ship")
	s.SetPen(core.ColorSky)
	s.DrawText(6, 0, "..")
	s.SetPen(core.ColorWhite)
	s.DrawText(0, 2, "Score: 10")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for y, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("row %d is %d cells wide, expected 12", y, w)
		}
	}
	for _, want := range []string{"ship", "..", "Score: 10"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered frame is missing %q", want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if got := RenderScreen(core.NewScreen(0, 0)); got != "" {
		t.Errorf("RenderScreen() of an empty screen = %q", got)
	}
}

func TestThemePalette(t *testing.T) {
	def := DefaultTheme()
	for c := range ansiColors {
		if _, ok := def.Palette[c]; !ok {
			t.Errorf("default palette is missing color %d", c)
		}
	}
	if _, plain := def.cellStyle(core.ColorDefault).GetForeground().(lipgloss.NoColor); !plain {
		t.Error("ColorDefault should keep the terminal foreground")
	}

	mono := MonochromeTheme()
	if _, plain := mono.cellStyle(core.ColorRed).GetForeground().(lipgloss.NoColor); !plain {
		t.Error("monochrome theme should draw game cells without color")
	}
}
