// Package asteroids implements the classic vector Asteroids game.
// A ship fires photons at drifting polygon asteroids that split when hit,
// over levels that respawn the field faster each time it is cleared.
package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Pool capacities. Entities live in fixed arrays and are never allocated during play.
const (
	PhotonCapacity   = 8
	AsteroidCapacity = 16
	MaxVertices      = 16
)

// Ship is the player's ship. There is always exactly one.
type Ship struct {
	X, Y   float64
	Phi    float64 // Heading in radians; 0 points up the screen
	DX, DY float64
}

// Pos returns the ship position.
func (s *Ship) Pos() core.Point {
	return core.Point{X: s.X, Y: s.Y}
}

// heading returns the unit vector the ship's nose points along.
func heading(phi float64) core.Point {
	sin, cos := math.Sincos(phi)
	return core.Point{X: -sin, Y: cos}
}

// Photon is a projectile fired by the ship.
type Photon struct {
	Active bool
	X, Y   float64
	DX, DY float64
}

// Pos returns the photon position.
func (p *Photon) Pos() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// Asteroid is an irregular polygon drifting and spinning through the world.
type Asteroid struct {
	Active    bool
	Vertices  int // Number of used entries in Offsets
	X, Y      float64
	Phi       float64
	DX, DY    float64
	DPhi      float64
	Size      float64
	Offsets   [MaxVertices]core.Point // Local-frame outline, counter-clockwise
	outlineAt [MaxVertices]core.Point // Scratch buffer for world-space outlines
}

// Pos returns the asteroid center.
func (a *Asteroid) Pos() core.Point {
	return core.Point{X: a.X, Y: a.Y}
}

// Outline returns the asteroid polygon in world space. With rotated false the
// local offsets are only translated, ignoring the current spin angle.
// The returned slice aliases internal storage and is valid until the next call.
func (a *Asteroid) Outline(rotated bool) []core.Point {
	center := a.Pos()
	for i := 0; i < a.Vertices; i++ {
		off := a.Offsets[i]
		if rotated {
			off = off.Rotate(a.Phi)
		}
		a.outlineAt[i] = center.Add(off)
	}
	return a.outlineAt[:a.Vertices]
}

// Contains reports whether p lies inside the asteroid outline.
func (a *Asteroid) Contains(p core.Point, rotated bool) bool {
	return core.PointInPolygon(a.Outline(rotated), p)
}
