package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "ada", nil)

	// Move the cursor onto the fake variant
	for _, g := range registry.List() {
		if g.ID == "fake" {
			break
		}
		m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewDifficulty {
		t.Fatalf("selecting a variant should ask for a difficulty, view = %d", m.view)
	}

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.gameModel == nil {
		t.Fatal("picking a difficulty should start the game")
	}
	if m.gameModel.game.ID() != "fake" || m.gameModel.player != "ada" {
		t.Errorf("unexpected game %s for player %s", m.gameModel.game.ID(), m.gameModel.player)
	}
	game := m.gameModel.game.(*fakeGame)

	// Ticks from another loop are ignored
	m = sessionStep(t, m, TickMsg{Time: time.Now(), ID: 0})
	if len(game.frames) != 0 {
		t.Error("stale ticks should not step the game")
	}
	m = sessionStep(t, m, TickMsg{Time: time.Now(), ID: m.gameModel.tickID})
	if len(game.frames) != 1 {
		t.Errorf("expected one step, got %d", len(game.frames))
	}

	// The session remembers the best score flown
	game.state.Score = 40
	m = sessionStep(t, m, TickMsg{Time: time.Now(), ID: m.gameModel.tickID})
	if games, best := m.Runs(); games != 1 || best != 40 {
		t.Errorf("Runs() = %d, %d; expected 1 game with best 40", games, best)
	}

	// Back only works once the game is over or paused
	m = sessionStep(t, m, runeKey('b'))
	if m.view != viewGame {
		t.Error("back should be ignored mid-run")
	}
	game.state.GameOver = true
	m = sessionStep(t, m, TickMsg{Time: time.Now(), ID: m.gameModel.tickID})
	m = sessionStep(t, m, runeKey('b'))
	if m.view != viewMenu || m.gameModel != nil {
		t.Error("back after game over should return to the menu")
	}
}

func TestSessionScoreboardAndQuit(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "ada", nil)

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScoreboard {
		t.Fatal("tab should open the scoreboard")
	}
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || next.(SessionModel).View() != "" {
		t.Error("q should end the session")
	}
}
