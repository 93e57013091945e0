package asteroids

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// recordingSurface captures draw calls for inspection.
type recordingSurface struct {
	color     RGB
	loops     []RGB // Color of each line loop
	discs     []RGB // Color of each disc
	texts     []string
	cleared   int
	presented int
}

func (r *recordingSurface) Clear()         { r.cleared++ }
func (r *recordingSurface) SetColor(c RGB) { r.color = c }
func (r *recordingSurface) LineLoop(pts ...core.Point) {
	r.loops = append(r.loops, r.color)
}
func (r *recordingSurface) Disc(center core.Point, radius float64) {
	r.discs = append(r.discs, r.color)
}
func (r *recordingSurface) Text(at core.Point, text string)    { r.texts = append(r.texts, text) }
func (r *recordingSurface) TextCentered(y float64, text string) { r.texts = append(r.texts, text) }
func (r *recordingSurface) Present()                            { r.presented++ }

func (r *recordingSurface) hasText(s string) bool {
	for _, t := range r.texts {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

func TestRenderDrawsEveryEntity(t *testing.T) {
	s := newTestSession(t)
	s.Fire()
	s.Fire()

	var surf recordingSurface
	s.Render(&surf)

	if surf.cleared != 1 || surf.presented != 1 {
		t.Errorf("cleared %d, presented %d; expected one of each", surf.cleared, surf.presented)
	}
	// Ship hull + 2 photons + 8 asteroids
	if len(surf.loops) != 1+2+8 {
		t.Errorf("drew %d line loops, expected 11", len(surf.loops))
	}
	if len(surf.discs) != 2 {
		t.Errorf("drew %d discs, expected 2 tail markers", len(surf.discs))
	}
	if !surf.hasText("Level: 1   Lives: 3   Score: 0") {
		t.Errorf("HUD missing, got %q", surf.texts)
	}
	if surf.hasText("GAME OVER") || surf.hasText("Invincible") {
		t.Errorf("unexpected banner in %q", surf.texts)
	}
}

func TestRenderShipColors(t *testing.T) {
	tests := []struct {
		name       string
		invincible int
		thrust     bool
		body, tail RGB
	}{
		{"idle", 0, false, colorHull, colorTail},
		{"thrusting", 0, true, colorHull, colorThrust},
		{"invincible", 30, false, colorShielded, colorTailShield},
		{"invincible thrusting", 30, true, colorShielded, colorTailShield},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t)
			s.invincible = tc.invincible
			if tc.thrust {
				s.Press(IntentUp)
			}

			var surf recordingSurface
			s.Render(&surf)

			if surf.loops[0] != tc.body {
				t.Errorf("body color = %+v, expected %+v", surf.loops[0], tc.body)
			}
			for _, c := range surf.discs {
				if c != tc.tail {
					t.Errorf("tail color = %+v, expected %+v", c, tc.tail)
				}
			}
			if got := surf.hasText("Invincible"); got != (tc.invincible > 0) {
				t.Errorf("Invincible banner shown = %v", got)
			}
		})
	}
}

func TestRenderGameOver(t *testing.T) {
	s := newTestSession(t)
	s.lives = 0
	s.invincible = 90

	var surf recordingSurface
	s.Render(&surf)

	if !surf.hasText("GAME OVER") || !surf.hasText("Press R to play again") {
		t.Errorf("game over banner missing, got %q", surf.texts)
	}
	if surf.hasText("Invincible") {
		t.Error("Invincible banner should be hidden after game over")
	}
	if !surf.hasText("Lives: 0") {
		t.Errorf("HUD should still show lives, got %q", surf.texts)
	}
}

func TestRenderGameOverReplacesShip(t *testing.T) {
	s := newTestSession(t)
	clearAsteroids(s)
	s.lives = 0

	var surf recordingSurface
	s.Render(&surf)

	if len(surf.loops) != 0 {
		t.Errorf("drew %d line loops after game over, expected no ship hull", len(surf.loops))
	}
	if len(surf.discs) != 0 {
		t.Errorf("drew %d discs after game over, expected no tail markers", len(surf.discs))
	}
	if len(surf.texts) == 0 || surf.texts[0] != "GAME OVER" {
		t.Errorf("game over text should be drawn first, got %q", surf.texts)
	}
}

func TestRenderPhotonColor(t *testing.T) {
	s := newTestSession(t)
	s.Fire()

	var surf recordingSurface
	s.Render(&surf)

	if surf.loops[1] != colorPhoton {
		t.Errorf("photon color = %+v, expected %+v", surf.loops[1], colorPhoton)
	}
	for _, c := range surf.loops[2:] {
		if c != colorRock {
			t.Errorf("asteroid color = %+v, expected %+v", c, colorRock)
		}
	}
}
