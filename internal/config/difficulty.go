package config

// LevelScaling calculates the per-level asteroid and ship limits.
type LevelScaling struct {
	cfg          LevelScalingConfig
	baseVelocity float64
	baseMaxVel   float64
}

// NewLevelScaling creates a scaler for the given base spawn velocity and ship velocity limit.
func NewLevelScaling(cfg LevelScalingConfig, baseVelocity, baseMaxVel float64) *LevelScaling {
	return &LevelScaling{
		cfg:          cfg,
		baseVelocity: baseVelocity,
		baseMaxVel:   baseMaxVel,
	}
}

// IsEnabled returns whether levels escalate.
func (s *LevelScaling) IsEnabled() bool {
	return s.cfg.Enabled
}

// SpawnRange returns the velocity range for asteroids spawned on the given level.
// Level 1 uses the base range; later levels widen it by range*level*step.
func (s *LevelScaling) SpawnRange(level int) (lo, hi float64) {
	lo, hi = -s.baseVelocity, s.baseVelocity
	if !s.cfg.Enabled || level <= 1 {
		return lo, hi
	}
	grow := float64(level) * s.cfg.RangeStep
	return lo + lo*grow, hi + hi*grow
}

// BaseMaxVelocity returns the velocity limit at the start of a run.
func (s *LevelScaling) BaseMaxVelocity() float64 {
	return s.baseMaxVel
}

// NextMaxVelocity returns the velocity limit after advancing a level.
func (s *LevelScaling) NextMaxVelocity(current float64) float64 {
	if !s.cfg.Enabled {
		return current
	}
	return current + current*s.cfg.VelocityGrowth
}
