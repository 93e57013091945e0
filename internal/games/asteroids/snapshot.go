package asteroids

import "math"

// Snapshot captures the session state for determinism testing.
// Floats are stored as raw bits so equal states compare equal exactly.
type Snapshot struct {
	Tick       int
	Level      int
	Lives      int
	Score      int
	Invincible int
	MaxVel     uint64

	// Ship: X, Y, Phi, DX, DY
	ShipData [5]uint64

	// Each active photon is 4 values: X, Y, DX, DY
	PhotonCount int
	PhotonData  []uint64

	// Each active asteroid is 7 values: X, Y, Phi, DX, DY, DPhi, Size
	AsteroidCount int
	AsteroidData  []uint64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.ticks,
		Level:      s.level,
		Lives:      s.lives,
		Score:      s.score,
		Invincible: s.invincible,
		MaxVel:     math.Float64bits(s.maxVel),
		ShipData: [5]uint64{
			math.Float64bits(s.ship.X),
			math.Float64bits(s.ship.Y),
			math.Float64bits(s.ship.Phi),
			math.Float64bits(s.ship.DX),
			math.Float64bits(s.ship.DY),
		},
	}

	for i := range s.photons {
		p := &s.photons[i]
		if !p.Active {
			continue
		}
		snap.PhotonCount++
		snap.PhotonData = append(snap.PhotonData,
			math.Float64bits(p.X), math.Float64bits(p.Y),
			math.Float64bits(p.DX), math.Float64bits(p.DY))
	}

	for i := range s.asteroids {
		a := &s.asteroids[i]
		if !a.Active {
			continue
		}
		snap.AsteroidCount++
		snap.AsteroidData = append(snap.AsteroidData,
			math.Float64bits(a.X), math.Float64bits(a.Y), math.Float64bits(a.Phi),
			math.Float64bits(a.DX), math.Float64bits(a.DY), math.Float64bits(a.DPhi),
			math.Float64bits(a.Size))
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Invincible)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PhotonCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AsteroidCount) //#nosec G115 -- hash computation
	h = h*31 + snap.MaxVel

	for _, v := range snap.ShipData {
		h = h*31 + v
	}
	for _, v := range snap.PhotonData {
		h = h*31 + v
	}
	for _, v := range snap.AsteroidData {
		h = h*31 + v
	}

	return h
}
