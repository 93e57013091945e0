package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// collide resolves photon hits and ship impacts for every live asteroid.
func (s *Session) collide() {
	rotated := s.cfg.Gameplay.RotatedHitTest
	hitBox := s.cfg.Asteroids.HitBox

	for i := range s.asteroids {
		a := &s.asteroids[i]
		if !a.Active {
			continue
		}

		for j := range s.photons {
			p := &s.photons[j]
			if !p.Active || !a.Active {
				continue
			}
			if !core.BoxAround(a.Pos(), hitBox).Contains(p.Pos()) {
				continue
			}
			if !a.Contains(p.Pos(), rotated) {
				continue
			}
			s.score++
			p.Active = false
			s.destroyAsteroid(i)
		}

		if !a.Active || s.invincible > 0 {
			continue
		}
		if !core.BoxAround(a.Pos(), hitBox).Contains(s.ship.Pos()) {
			continue
		}
		if s.shipTouches(a, rotated) {
			s.destroyAsteroid(i)
			s.shipHit()
		}
	}
}

// shipTouches reports whether any of the ship's sample points is inside a.
func (s *Session) shipTouches(a *Asteroid, rotated bool) bool {
	for _, off := range s.shipSamples() {
		if rotated {
			off = off.Rotate(s.ship.Phi)
		}
		if a.Contains(s.ship.Pos().Add(off), rotated) {
			return true
		}
	}
	return false
}

// shipSamples returns the hull points tested against asteroids, relative to
// the ship position: nose, both tail corners, both mid-flanks and the tail center.
func (s *Session) shipSamples() [6]core.Point {
	w, h := s.cfg.Ship.HalfWidth, s.cfg.Ship.HalfHeight
	return [6]core.Point{
		{X: 0, Y: h},
		{X: w, Y: -h},
		{X: -w, Y: -h},
		{X: -w / 2, Y: 0},
		{X: w / 2, Y: 0},
		{X: 0, Y: -h},
	}
}

// shipHit recenters the ship, grants invincibility and takes a life.
func (s *Session) shipHit() {
	s.resetShip()
	s.invincible = s.cfg.Gameplay.InvincibleTicks
	if s.lives > 0 {
		s.lives--
	}
}
