package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Options carries per-player settings for a game run.
type Options struct {
	// Player is recorded with saved scores (local user or SSH login).
	Player string

	// Logger receives run events. Nil discards them.
	Logger *log.Logger
}

// runner drives one game: input collection, ticking, resizing and score
// persistence. Both the local Model and the SSH GameModel embed it.
type runner struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	interval   time.Duration
	tickID     int
	keyMapper  *KeyMapper
	holds      *HoldTracker // nil for games without held input
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string
	runID      string
	logger     *log.Logger
	scoreSaved bool // Whether the current run has been recorded
}

func newRunner(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) runner {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Reset first: pace and hold time may come from the game's own config
	game.Reset(cfg)

	r := runner{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		interval:   tickInterval(game, cfg),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		player:     opts.Player,
		runID:      uuid.NewString(),
		logger:     logger,
	}
	if held, ok := game.(registry.HeldInput); ok {
		r.holds = NewHoldTracker(held.InitialHoldTicks(), held.HoldTicks())
	}
	return r
}

// start returns the first tick of the game loop.
func (r runner) start() tea.Cmd {
	r.logger.Info("game started", "game", r.game.ID(), "player", r.player, "run", r.runID)
	return tickCmd(r.interval, r.tickID)
}

// key records a key press. Returns true if the key asked to quit.
func (r *runner) key(msg tea.KeyMsg) bool {
	if msg.String() == "ctrl+s" {
		if path, err := r.saveScreenshot(); err != nil {
			r.logger.Warn("screenshot failed", "error", err)
		} else {
			r.logger.Info("screenshot saved", "path", path)
		}
		return false
	}
	return r.keyMapper.MapKeyToFrame(msg, &r.inputFrame, r.holds)
}

// resize adapts the game to a new terminal size.
func (r *runner) resize(width, height int) {
	r.config.ScreenW = width
	r.config.ScreenH = height
	r.screen.Resize(width, height)

	if g, ok := r.game.(registry.Resizable); ok {
		g.Resize(r.config)
		return
	}

	// Games that cannot rescale start over
	if !r.gameState.GameOver {
		r.finishRun()
		r.game.Reset(r.config)
		r.beginRun()
	}
}

// tick advances the game by one step and records finished runs.
func (r *runner) tick() tea.Cmd {
	restart := r.inputFrame.Has(core.ActionRestart)
	if restart {
		// An abandoned run still counts
		r.finishRun()
	}

	if r.holds != nil {
		r.holds.Apply(&r.inputFrame)
	}

	result := r.game.Step(r.inputFrame)
	r.gameState = result.State

	if restart {
		r.beginRun()
	}
	if result.LevelAdvanced {
		r.logger.Info("level advanced",
			"game", r.game.ID(),
			"level", r.gameState.Level,
			"score", r.gameState.Score,
		)
	}
	if r.gameState.GameOver && !r.scoreSaved {
		r.logger.Info("game over",
			"game", r.game.ID(),
			"level", r.gameState.Level,
			"score", r.gameState.Score,
		)
		r.finishRun()
	}

	// Clear input for next frame
	r.inputFrame.Clear()

	return tickCmd(r.interval, r.tickID)
}

// beginRun starts tracking a fresh run.
func (r *runner) beginRun() {
	r.runID = uuid.NewString()
	r.scoreSaved = false
	if r.holds != nil {
		r.holds.Reset()
	}
}

// finishRun saves the current run's score once. Scoreless runs are not kept.
func (r *runner) finishRun() {
	if r.scoreSaved {
		return
	}
	r.scoreSaved = true

	if r.store == nil || r.gameState.Score <= 0 {
		return
	}
	_, err := r.store.SaveScore(storage.ScoreRecord{
		GameID: r.game.ID(),
		Score:  r.gameState.Score,
		Level:  r.gameState.Level,
		Player: r.player,
		RunID:  r.runID,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		r.logger.Warn("could not save score", "game", r.game.ID(), "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (r *runner) saveScreenshot() (string, error) {
	r.game.Render(r.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", r.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(r.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// view renders the game into a styled string.
func (r runner) view() string {
	r.game.Render(r.screen)
	return RenderScreen(r.screen)
}

// Model is the Bubble Tea model for running a game in the local terminal.
type Model struct {
	runner
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	return Model{runner: newRunner(game, store, cfg, opts)}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	return m.start()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.key(msg) {
			m.finishRun()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
