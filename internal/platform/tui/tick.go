// Package tui provides the Bubble Tea integration for the asteroids game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// TickMsg is sent to trigger a game simulation tick.
// ID names the tick loop that scheduled it so a loop left behind by an
// earlier game in the same program can be told apart and dropped.
type TickMsg struct {
	Time time.Time
	ID   int
}

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration, id int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}

// tickInterval picks the frame interval for a game. Games that set their own
// pace win over the --fps rate.
func tickInterval(game registry.Game, cfg core.RuntimeConfig) time.Duration {
	if paced, ok := game.(registry.Paced); ok {
		if d := paced.TickInterval(); d > 0 {
			return d
		}
	}
	rate := cfg.TickRate
	if rate <= 0 {
		rate = 30
	}
	return time.Second / time.Duration(rate)
}
