package asteroids

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Minimum playable screen size in cells.
const (
	minScreenW = 30
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// intentActions maps held intents to the platform actions that drive them.
var intentActions = [intentCount]core.Action{
	IntentUp:    core.ActionUp,
	IntentDown:  core.ActionDown,
	IntentLeft:  core.ActionLeft,
	IntentRight: core.ActionRight,
}

// Game adapts a Session to the game platform.
type Game struct {
	precise bool // Hit tests follow the asteroid's spin
	preset  config.DifficultyPreset

	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	session *Session

	paused         bool
	screenTooSmall bool
}

// New creates the classic Asteroids game.
func New() *Game {
	return &Game{}
}

// NewPrecise creates a variant whose hit tests use the rotated asteroid outline.
func NewPrecise() *Game {
	return &Game{precise: true}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.precise {
		return "asteroids_precise"
	}
	return "asteroids"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.precise {
		return "Asteroids (Precise Hits)"
	}
	return "Asteroids"
}

// Description explains how the variant judges hits.
func (g *Game) Description() string {
	if g.precise {
		return "Hits follow each asteroid's spinning outline"
	}
	return "Asteroids collide as if they never spun"
}

// SetDifficulty picks a preset for this instance, overriding the --difficulty
// flag. It takes effect on the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyAsteroidsPreset(&cfg, preset)
	}
	if g.precise {
		cfg.Gameplay.RotatedHitTest = true
	}
	g.cfg = cfg

	g.paused = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.session = NewSession(cfg, g.aspect(), runtime.Seed)
}

// Resize adapts the world to new screen dimensions without ending the run.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	if g.session != nil {
		g.session.SetAspect(g.aspect())
	}
}

// aspect returns the world width/height ratio that makes the screen's
// cells map to square world units.
func (g *Game) aspect() float64 {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	if w <= 0 || h <= 0 {
		w, h = core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	}
	cellAspect := g.cfg.World.CellAspect
	if cellAspect <= 0 {
		cellAspect = 2
	}
	return float64(w) / (float64(h) * cellAspect)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.Restart()
		g.paused = false
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionGodmode) {
		g.session.ToggleGodmode()
	}
	if in.Has(core.ActionFire) {
		g.session.Fire()
	}

	for intent, action := range intentActions {
		switch {
		case in.Has(action) || in.IsHeld(action):
			g.session.Press(Intent(intent))
		case g.session.Holding(Intent(intent)):
			g.session.Release(Intent(intent))
		}
	}

	advanced := g.session.Advance()
	return core.StepResult{State: g.State(), LevelAdvanced: advanced}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		g.drawCenteredBox(dst, "Window too small", "Resize to continue")
		return
	}
	if g.session == nil {
		return
	}

	g.session.Render(NewScreenSurface(dst, g.session.Width(), g.session.Height()))

	if g.paused {
		dst.SetPen(core.ColorWhite)
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	st.Paused = g.paused
	return st
}

// Session exposes the running simulation.
func (g *Game) Session() *Session {
	return g.session
}

// TickInterval returns the configured simulation period.
func (g *Game) TickInterval() time.Duration {
	ms := g.cfg.Gameplay.TickMillis
	if ms <= 0 {
		ms = config.DefaultAsteroidsConfig().Gameplay.TickMillis
	}
	return time.Duration(ms) * time.Millisecond
}

// InitialHoldTicks returns how long a freshly pressed direction key stays held.
func (g *Game) InitialHoldTicks() int {
	if g.cfg.Input.InitialHoldTicks <= 0 {
		return config.DefaultAsteroidsConfig().Input.InitialHoldTicks
	}
	return g.cfg.Input.InitialHoldTicks
}

// HoldTicks returns how long a repeated direction key stays held.
func (g *Game) HoldTicks() int {
	if g.cfg.Input.HoldTicks <= 0 {
		return config.DefaultAsteroidsConfig().Input.HoldTicks
	}
	return g.cfg.Input.HoldTicks
}

// Register the games with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
	registry.Register("asteroids_precise", func() registry.Game {
		return NewPrecise()
	})
}
