package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Session holds the whole simulation: entity pools, session counters and
// the current intents. It has no terminal dependencies, so a test can drive
// it tick by tick.
type Session struct {
	cfg     config.AsteroidsConfig
	scaling *config.LevelScaling
	rng     *rand.Rand

	width, height float64

	ship      Ship
	photons   [PhotonCapacity]Photon
	asteroids [AsteroidCapacity]Asteroid
	intents   [intentCount]bool

	lives      int
	score      int
	level      int
	invincible int // Ticks left during which the ship cannot be hit
	ticks      int

	maxVel             float64
	spawnMin, spawnMax float64
}

// NewSession creates a session for a world of the given aspect ratio (width/height)
// and starts level 1.
func NewSession(cfg config.AsteroidsConfig, aspect float64, seed int64) *Session {
	if cfg.World.Height <= 0 {
		cfg.World.Height = 100
	}
	if aspect <= 0 {
		aspect = 1
	}

	s := &Session{
		cfg:     cfg,
		scaling: config.NewLevelScaling(cfg.Difficulty, cfg.Asteroids.BaseVelocity, cfg.Ship.MaxVelocity),
		rng:     rand.New(rand.NewSource(seed)),
		height:  cfg.World.Height,
		width:   cfg.World.Height * aspect,
	}
	s.Restart()
	return s
}

// Restart begins a new run at level 1 with full lives and zero score.
func (s *Session) Restart() {
	s.level = 1
	s.lives = s.cfg.Gameplay.Lives
	s.score = 0
	s.maxVel = s.scaling.BaseMaxVelocity()
	s.initWorld()
}

// initWorld recenters the ship and replaces the asteroid field with a fresh wave.
func (s *Session) initWorld() {
	s.spawnMin, s.spawnMax = s.scaling.SpawnRange(s.level)
	s.resetShip()
	for i := range s.asteroids {
		s.asteroids[i].Active = false
	}
	s.spawnWave()
}

// resetShip puts the ship at the view center, at rest and pointing up.
func (s *Session) resetShip() {
	s.ship = Ship{X: s.width / 2, Y: s.height / 2}
}

// SetAspect rescales the world width after a viewport resize.
func (s *Session) SetAspect(aspect float64) {
	if aspect <= 0 {
		return
	}
	s.width = s.height * aspect
}

// Width returns the world width.
func (s *Session) Width() float64 { return s.width }

// Height returns the world height.
func (s *Session) Height() float64 { return s.height }

// Ship returns a copy of the ship state.
func (s *Session) Ship() Ship { return s.ship }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Score returns the number of asteroids destroyed by photons.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Invincible returns the remaining invincibility ticks.
func (s *Session) Invincible() int { return s.invincible }

// MaxVelocity returns the current per-component velocity limit.
func (s *Session) MaxVelocity() float64 { return s.maxVel }

// Ticks returns the number of ticks advanced since the session was created.
func (s *Session) Ticks() int { return s.ticks }

// GameOver reports whether all lives are spent.
func (s *Session) GameOver() bool { return s.lives <= 0 }

// Photons returns a copy of the photon pool.
func (s *Session) Photons() [PhotonCapacity]Photon { return s.photons }

// Asteroids returns a copy of the asteroid pool.
func (s *Session) Asteroids() [AsteroidCapacity]Asteroid { return s.asteroids }

// ActivePhotons counts photons in flight.
func (s *Session) ActivePhotons() int {
	n := 0
	for i := range s.photons {
		if s.photons[i].Active {
			n++
		}
	}
	return n
}

// ActiveAsteroids counts live asteroids.
func (s *Session) ActiveAsteroids() int {
	n := 0
	for i := range s.asteroids {
		if s.asteroids[i].Active {
			n++
		}
	}
	return n
}

// State summarizes the session for the platform.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Level:    s.level,
		Lives:    s.lives,
		GameOver: s.GameOver(),
	}
}
