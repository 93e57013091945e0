package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Advance runs one simulation tick and reports whether a new level started.
func (s *Session) Advance() bool {
	s.ticks++
	if s.invincible > 0 {
		s.invincible--
	}

	advanced := false
	if s.ActiveAsteroids() == 0 {
		s.advanceLevel()
		advanced = true
	}

	s.steerShip()
	s.moveShip()
	s.movePhotons()
	s.moveAsteroids()
	s.collide()

	return advanced
}

// advanceLevel moves to the next level with a fresh, faster field.
func (s *Session) advanceLevel() {
	s.level++
	s.initWorld()
	s.maxVel = s.scaling.NextMaxVelocity(s.maxVel)
}

// steerShip applies the held intents to the ship's heading and velocity.
func (s *Session) steerShip() {
	sc := s.cfg.Ship
	dir := heading(s.ship.Phi)
	if s.intents[IntentUp] {
		s.ship.DX += sc.Thrust * dir.X
		s.ship.DY += sc.Thrust * dir.Y
	}
	if s.intents[IntentDown] {
		s.ship.DX -= sc.Thrust * dir.X
		s.ship.DY -= sc.Thrust * dir.Y
	}
	if s.intents[IntentRight] {
		s.ship.Phi -= sc.TurnRate
	}
	if s.intents[IntentLeft] {
		s.ship.Phi += sc.TurnRate
	}
	s.ship.DX = core.ClampF(s.ship.DX, -s.maxVel, s.maxVel)
	s.ship.DY = core.ClampF(s.ship.DY, -s.maxVel, s.maxVel)
}

// moveShip integrates the ship position and wraps it around the view.
func (s *Session) moveShip() {
	scale := s.cfg.Ship.VelocityScale
	s.ship.X += s.ship.DX * scale
	s.ship.Y += s.ship.DY * scale

	if s.ship.X < 0 {
		s.ship.X = s.width
	}
	if s.ship.X > s.width {
		s.ship.X = 0
	}
	if s.ship.Y < 0 {
		s.ship.Y = s.height
	}
	if s.ship.Y > s.height {
		s.ship.Y = 0
	}
}

// movePhotons retires photons that left the view, then moves the rest.
// The bounds check uses the position from before this tick's move.
func (s *Session) movePhotons() {
	for i := range s.photons {
		p := &s.photons[i]
		if !p.Active {
			continue
		}
		if p.X < 0 || p.X > s.width || p.Y < 0 || p.Y > s.height {
			p.Active = false
			continue
		}
		p.X += p.DX
		p.Y += p.DY
	}
}

// moveAsteroids integrates asteroid motion and bounces them off the margin
// outside each edge.
func (s *Session) moveAsteroids() {
	margin := s.cfg.Asteroids.BounceMargin
	for i := range s.asteroids {
		a := &s.asteroids[i]
		if !a.Active {
			continue
		}

		a.X += a.DX
		a.DX = core.ClampF(a.DX, -s.maxVel, s.maxVel)
		a.Y += a.DY
		a.DY = core.ClampF(a.DY, -s.maxVel, s.maxVel)
		a.Phi += a.DPhi

		if a.X < -margin || a.X > s.width+margin {
			a.DX = -a.DX
		}
		if a.Y < -margin || a.Y > s.height+margin {
			a.DY = -a.DY
		}
	}
}
