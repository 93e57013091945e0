package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: AsteroidsWorld{
			Height:     100.0,
			CellAspect: 2.0,
		},
		Ship: AsteroidsShip{
			Thrust:        0.75,
			TurnRate:      0.50,
			VelocityScale: 0.03,
			MaxVelocity:   25.0,
			HalfWidth:     3.0,
			HalfHeight:    4.0,
		},
		Photons: AsteroidsPhotons{
			Speed: 1.5,
		},
		Asteroids: AsteroidsRocks{
			SpawnSize:    3.0,
			SplitMinSize: 2.0,
			SplitShrink:  1.2,
			BaseVelocity: 1.5,
			Spin:         0.015,
			RadiusMin:    2.0,
			RadiusMax:    3.0,
			MinVertices:  6,
			BounceMargin: 10.0,
			HitBox:       10.0,
		},
		Gameplay: AsteroidsGameplay{
			Lives:           3,
			InvincibleTicks: 90,
			TickMillis:      33,
			GodmodeLives:    1000,
			RotatedHitTest:  false,
		},
		Input: AsteroidsInput{
			InitialHoldTicks: 15,
			HoldTicks:        5,
		},
		Difficulty: LevelScalingConfig{
			Enabled:        true,
			RangeStep:      0.25,
			VelocityGrowth: 0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids", "asteroids_precise":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
