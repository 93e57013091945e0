package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// fakeGame records its inputs and exposes a scripted state.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	state   core.GameState
	levelUp bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1, Lives: 3}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionRestart) {
		g.state = core.GameState{Level: 1, Lives: 3}
	}
	res := core.StepResult{State: g.state, LevelAdvanced: g.levelUp}
	g.levelUp = false
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) InitialHoldTicks() int { return 2 }
func (g *fakeGame) HoldTicks() int        { return 2 }

// pacedGame also sets its own pace and rescales without resetting.
type pacedGame struct {
	fakeGame
	resized int
}

func (g *pacedGame) TickInterval() time.Duration { return 50 * time.Millisecond }
func (g *pacedGame) Resize(core.RuntimeConfig)   { g.resized++ }

func newTestRunner(t *testing.T, game *fakeGame) (*runner, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	r := newRunner(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 20, Seed: 1}, Options{Player: "ada"})
	r.start()
	return &r, store
}

func TestTickInterval(t *testing.T) {
	cfg := core.RuntimeConfig{TickRate: 20}
	if got := tickInterval(&fakeGame{}, cfg); got != 50*time.Millisecond {
		t.Errorf("tickInterval() = %v, expected 50ms from the tick rate", got)
	}
	if got := tickInterval(&pacedGame{}, core.RuntimeConfig{TickRate: 100}); got != 50*time.Millisecond {
		t.Errorf("tickInterval() = %v, expected the game's own pace", got)
	}
	if got := tickInterval(&fakeGame{}, core.RuntimeConfig{}); got != time.Second/30 {
		t.Errorf("tickInterval() = %v, expected the 30 fps fallback", got)
	}
}

func TestRunnerHoldsDirections(t *testing.T) {
	game := &fakeGame{}
	r, _ := newTestRunner(t, game)

	r.key(tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 3; i++ {
		r.tick()
	}

	if len(game.frames) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(game.frames))
	}
	for i, want := range []bool{true, true, false} {
		if got := game.frames[i].IsHeld(core.ActionLeft); got != want {
			t.Errorf("step %d: left held = %v, expected %v", i, got, want)
		}
	}
	if game.frames[0].Has(core.ActionLeft) {
		t.Error("held directions should not be reported as one-shot actions")
	}
}

func TestRunnerClearsActionsEachTick(t *testing.T) {
	game := &fakeGame{}
	r, _ := newTestRunner(t, game)

	r.key(runeKey(' '))
	r.tick()
	r.tick()

	if !game.frames[0].Has(core.ActionFire) {
		t.Error("fire should reach the first step")
	}
	if game.frames[1].Has(core.ActionFire) {
		t.Error("fire should not repeat on the next step")
	}
}

func TestRunnerSavesScoreOnce(t *testing.T) {
	game := &fakeGame{}
	r, store := newTestRunner(t, game)

	game.state = core.GameState{Score: 12, Level: 3, GameOver: true}
	r.tick()
	r.tick()

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one saved run, got %d", len(scores))
	}
	if scores[0].Score != 12 || scores[0].Level != 3 || scores[0].Player != "ada" || scores[0].RunID != r.runID {
		t.Errorf("unexpected saved run %+v", scores[0])
	}
}

func TestRunnerSkipsScorelessRuns(t *testing.T) {
	game := &fakeGame{}
	r, store := newTestRunner(t, game)

	game.state = core.GameState{Level: 1, GameOver: true}
	r.tick()

	if high, _ := store.HighScore("fake"); high != 0 {
		t.Errorf("nothing should be saved for a scoreless run, got %d", high)
	}
}

func TestRunnerRestartStartsNewRun(t *testing.T) {
	game := &fakeGame{}
	r, store := newTestRunner(t, game)

	game.state = core.GameState{Score: 5, Level: 2, Lives: 2}
	r.tick()
	firstRun := r.runID

	// Restart mid-run saves the abandoned run
	r.key(runeKey('r'))
	r.tick()
	if r.runID == firstRun {
		t.Error("restart should begin a new run")
	}
	if r.gameState.Score != 0 || r.gameState.Level != 1 {
		t.Errorf("restart should reach the game, got %+v", r.gameState)
	}

	game.state = core.GameState{Score: 9, Level: 1, GameOver: true}
	r.tick()

	scores, _ := store.AllScores("fake")
	if len(scores) != 2 {
		t.Fatalf("expected two runs, got %d", len(scores))
	}
	if scores[0].Score != 9 || scores[1].Score != 5 || scores[0].RunID == scores[1].RunID {
		t.Errorf("unexpected runs %+v", scores)
	}
}

func TestRunnerResize(t *testing.T) {
	plain := &fakeGame{}
	r, _ := newTestRunner(t, plain)
	r.resize(60, 20)
	if plain.resets != 2 {
		t.Errorf("games without Resize should be reset, resets = %d", plain.resets)
	}
	if r.screen.Width() != 60 || r.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, expected 60x20", r.screen.Width(), r.screen.Height())
	}

	paced := &pacedGame{}
	pr := newRunner(paced, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, Options{})
	pr.start()
	pr.resize(60, 20)
	if paced.resized != 1 || paced.resets != 1 {
		t.Errorf("resizable games keep their run: resized=%d resets=%d", paced.resized, paced.resets)
	}
	if pr.interval != 50*time.Millisecond {
		t.Errorf("interval = %v, expected the game's pace", pr.interval)
	}
}

func TestModelQuit(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1}, Options{})
	m.Init()

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("a quitting model renders nothing")
	}
}
