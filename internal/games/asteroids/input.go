package asteroids

// Intent is a held directional control.
type Intent int

const (
	IntentUp Intent = iota
	IntentDown
	IntentLeft
	IntentRight
	intentCount
)

// Press starts holding an intent. Ignored once the game is over.
func (s *Session) Press(in Intent) {
	if in < 0 || in >= intentCount || s.lives <= 0 {
		return
	}
	s.intents[in] = true
}

// Release stops holding an intent. Always honored.
func (s *Session) Release(in Intent) {
	if in < 0 || in >= intentCount {
		return
	}
	s.intents[in] = false
}

// Holding reports whether an intent is currently held.
func (s *Session) Holding(in Intent) bool {
	if in < 0 || in >= intentCount {
		return false
	}
	return s.intents[in]
}

// Fire launches a photon from the ship along its heading.
// Returns false when all photons are already in flight or the game is over.
func (s *Session) Fire() bool {
	if s.lives <= 0 {
		return false
	}
	slot := s.freePhotonSlot()
	if slot < 0 {
		return false
	}

	dir := heading(s.ship.Phi)
	speed := s.cfg.Photons.Speed
	s.photons[slot] = Photon{
		Active: true,
		X:      s.ship.X,
		Y:      s.ship.Y,
		DX:     speed * dir.X,
		DY:     speed * dir.Y,
	}
	return true
}

// ToggleGodmode swaps between a huge life pool and the normal count.
// Has no effect once the game is over.
func (s *Session) ToggleGodmode() {
	if s.lives <= 0 {
		return
	}
	if s.lives <= s.cfg.Gameplay.Lives {
		s.lives = s.cfg.Gameplay.GodmodeLives
	} else {
		s.lives = s.cfg.Gameplay.Lives
	}
}
