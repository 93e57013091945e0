package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Edges asteroids can enter from at the start of a level.
const (
	edgeLeft = iota
	edgeRight
	edgeBottom
	edgeTop
)

// spawnWave fills half the asteroid pool with full-size asteroids on random edges.
func (s *Session) spawnWave() {
	size := s.cfg.Asteroids.SpawnSize
	for i := 0; i < AsteroidCapacity/2; i++ {
		var x, y float64
		switch s.rng.Intn(4) {
		case edgeLeft:
			x, y = 0, core.RandRange(s.rng, 0, s.height)
		case edgeRight:
			x, y = s.width, core.RandRange(s.rng, 0, s.height)
		case edgeBottom:
			x, y = core.RandRange(s.rng, 0, s.width), 0
		case edgeTop:
			x, y = core.RandRange(s.rng, 0, s.width), s.height
		}
		s.spawnAsteroid(i, x, y, size)
	}
}

// spawnAsteroid initializes slot with a new random asteroid at (x, y).
func (s *Session) spawnAsteroid(slot int, x, y, size float64) {
	rc := s.cfg.Asteroids
	minV := core.Clamp(rc.MinVertices, 3, MaxVertices-1)

	a := &s.asteroids[slot]
	a.X, a.Y = x, y
	a.Phi = 0
	a.DX = core.RandRange(s.rng, s.spawnMin, s.spawnMax)
	a.DY = core.RandRange(s.rng, s.spawnMin, s.spawnMax)
	a.DPhi = core.RandRange(s.rng, -rc.Spin, rc.Spin)
	a.Size = size
	a.Vertices = minV + s.rng.Intn(MaxVertices-minV)

	for i := 0; i < a.Vertices; i++ {
		theta := 2 * math.Pi * float64(i) / float64(a.Vertices)
		r := size * core.RandRange(s.rng, rc.RadiusMin, rc.RadiusMax)
		sin, cos := math.Sincos(theta)
		a.Offsets[i] = core.Point{X: -r * sin, Y: r * cos}
	}
	a.Active = true
}

// freeAsteroidSlot returns the first inactive asteroid slot, or -1 if the pool is full.
func (s *Session) freeAsteroidSlot() int {
	for i := range s.asteroids {
		if !s.asteroids[i].Active {
			return i
		}
	}
	return -1
}

// freePhotonSlot returns the first inactive photon slot, or -1 if all are in flight.
func (s *Session) freePhotonSlot() int {
	for i := range s.photons {
		if !s.photons[i].Active {
			return i
		}
	}
	return -1
}

// destroyAsteroid removes the asteroid in slot. Large asteroids split in two:
// the first child reuses the slot, the second takes the first free slot if any.
func (s *Session) destroyAsteroid(slot int) {
	a := &s.asteroids[slot]
	a.Active = false
	if a.Size < s.cfg.Asteroids.SplitMinSize {
		return
	}

	x, y := a.X, a.Y
	size := a.Size - s.cfg.Asteroids.SplitShrink
	s.spawnAsteroid(slot, x, y, size)
	if free := s.freeAsteroidSlot(); free >= 0 {
		s.spawnAsteroid(free, x, y, size)
	}
}
