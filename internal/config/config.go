// Package config provides YAML/TOML game configuration loading and
// difficulty management for the game platform.
package config

// AsteroidsConfig contains all configuration for the Asteroids game.
type AsteroidsConfig struct {
	World      AsteroidsWorld     `yaml:"world" toml:"world"`
	Ship       AsteroidsShip      `yaml:"ship" toml:"ship"`
	Photons    AsteroidsPhotons   `yaml:"photons" toml:"photons"`
	Asteroids  AsteroidsRocks     `yaml:"asteroids" toml:"asteroids"`
	Gameplay   AsteroidsGameplay  `yaml:"gameplay" toml:"gameplay"`
	Input      AsteroidsInput     `yaml:"input" toml:"input"`
	Difficulty LevelScalingConfig `yaml:"difficulty" toml:"difficulty"`
}

// AsteroidsWorld defines the logical coordinate space.
type AsteroidsWorld struct {
	Height     float64 `yaml:"height" toml:"height"`           // Logical height; width follows the aspect ratio
	CellAspect float64 `yaml:"cell_aspect" toml:"cell_aspect"` // Terminal cell height / width
}

// AsteroidsShip defines ship handling.
type AsteroidsShip struct {
	Thrust        float64 `yaml:"thrust" toml:"thrust"`                 // Velocity gained per tick of thrust
	TurnRate      float64 `yaml:"turn_rate" toml:"turn_rate"`           // Radians per tick
	VelocityScale float64 `yaml:"velocity_scale" toml:"velocity_scale"` // Position units per velocity unit per tick
	MaxVelocity   float64 `yaml:"max_velocity" toml:"max_velocity"`     // Base per-component velocity limit
	HalfWidth     float64 `yaml:"half_width" toml:"half_width"`
	HalfHeight    float64 `yaml:"half_height" toml:"half_height"`
}

// AsteroidsPhotons defines projectile parameters.
type AsteroidsPhotons struct {
	Speed float64 `yaml:"speed" toml:"speed"`
}

// AsteroidsRocks defines asteroid generation and movement.
type AsteroidsRocks struct {
	SpawnSize    float64 `yaml:"spawn_size" toml:"spawn_size"`         // Size of asteroids spawned at level start
	SplitMinSize float64 `yaml:"split_min_size" toml:"split_min_size"` // Asteroids at least this big split
	SplitShrink  float64 `yaml:"split_shrink" toml:"split_shrink"`     // Size lost by each child
	BaseVelocity float64 `yaml:"base_velocity" toml:"base_velocity"`   // Spawn velocity range is [-v, v]
	Spin         float64 `yaml:"spin" toml:"spin"`                     // Angular velocity range is [-s, s]
	RadiusMin    float64 `yaml:"radius_min" toml:"radius_min"`         // Vertex radius range, scaled by size
	RadiusMax    float64 `yaml:"radius_max" toml:"radius_max"`
	MinVertices  int     `yaml:"min_vertices" toml:"min_vertices"`
	BounceMargin float64 `yaml:"bounce_margin" toml:"bounce_margin"` // Distance past the edge before bouncing
	HitBox       float64 `yaml:"hit_box" toml:"hit_box"`             // Half-size of the collision pre-check box
}

// AsteroidsGameplay defines session rules.
type AsteroidsGameplay struct {
	Lives           int  `yaml:"lives" toml:"lives"`
	InvincibleTicks int  `yaml:"invincible_ticks" toml:"invincible_ticks"`
	TickMillis      int  `yaml:"tick_ms" toml:"tick_ms"`
	GodmodeLives    int  `yaml:"godmode_lives" toml:"godmode_lives"`
	RotatedHitTest  bool `yaml:"rotated_hit_test" toml:"rotated_hit_test"`
}

// AsteroidsInput defines how terminal key presses become held controls.
type AsteroidsInput struct {
	InitialHoldTicks int `yaml:"initial_hold_ticks" toml:"initial_hold_ticks"` // Ticks a fresh press is held, spanning the first repeat delay
	HoldTicks        int `yaml:"hold_ticks" toml:"hold_ticks"`                 // Ticks a direction stays held after a key repeat
}

// LevelScalingConfig defines how each new level gets harder.
type LevelScalingConfig struct {
	Enabled        bool    `yaml:"enabled" toml:"enabled"`
	RangeStep      float64 `yaml:"range_step" toml:"range_step"`           // Spawn range grows by range*level*step
	VelocityGrowth float64 `yaml:"velocity_growth" toml:"velocity_growth"` // Max velocity grows by this fraction per level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
