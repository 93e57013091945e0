package asteroids

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Palette used by the renderer.
var (
	colorHull       = RGB{0.5, 0.5, 0.5}
	colorShielded   = RGB{0, 0.7, 1}
	colorThrust     = RGB{1, 0.5, 0}
	colorTail       = RGB{0.2, 0.7, 0.8}
	colorTailShield = RGB{0, 0, 1}
	colorRock       = RGB{0.5, 0.5, 0.5}
	colorPhoton     = RGB{0, 0.2, 1}
	colorHUD        = RGB{1, 1, 1}
	colorGameOver   = RGB{1, 0, 0}
)

// Surface is a 2D vector drawing target in world coordinates, y pointing up.
type Surface interface {
	Clear()
	SetColor(c RGB)
	LineLoop(pts ...core.Point)
	Disc(center core.Point, radius float64)
	Text(at core.Point, text string)
	TextCentered(y float64, text string)
	Present()
}

// tailRadius is the size of the discs marking the ship's tail corners.
const tailRadius = 1.0

// Render draws one frame of the session onto dst.
func (s *Session) Render(dst Surface) {
	dst.Clear()

	if s.lives > 0 {
		s.renderShip(dst)
	} else {
		renderGameOver(dst, s.height)
	}
	for i := range s.photons {
		if s.photons[i].Active {
			renderPhoton(dst, &s.photons[i])
		}
	}
	for i := range s.asteroids {
		if s.asteroids[i].Active {
			dst.SetColor(colorRock)
			dst.LineLoop(s.asteroids[i].Outline(true)...)
		}
	}
	s.renderHUD(dst)

	dst.Present()
}

func (s *Session) renderShip(dst Surface) {
	w, h := s.cfg.Ship.HalfWidth, s.cfg.Ship.HalfHeight
	pos := s.ship.Pos()
	nose := pos.Add(core.Point{X: 0, Y: h}.Rotate(s.ship.Phi))
	left := pos.Add(core.Point{X: -w, Y: -h}.Rotate(s.ship.Phi))
	right := pos.Add(core.Point{X: w, Y: -h}.Rotate(s.ship.Phi))

	body := colorHull
	if s.invincible > 0 {
		body = colorShielded
	}
	dst.SetColor(body)
	dst.LineLoop(nose, left, right)

	tail := colorTail
	switch {
	case s.invincible > 0:
		tail = colorTailShield
	case s.intents[IntentUp]:
		tail = colorThrust
	}
	dst.SetColor(tail)
	dst.Disc(left, tailRadius)
	dst.Disc(right, tailRadius)
}

func renderPhoton(dst Surface, p *Photon) {
	dst.SetColor(colorPhoton)
	dst.LineLoop(
		core.Point{X: p.X, Y: p.Y},
		core.Point{X: p.X + 0.3, Y: p.Y + 0.3},
		core.Point{X: p.X - 3*p.DX, Y: p.Y - 3*p.DY},
	)
}

// renderGameOver takes the ship's place once the last life is gone.
func renderGameOver(dst Surface, height float64) {
	dst.SetColor(colorGameOver)
	dst.TextCentered(height/2, "GAME OVER")
	dst.SetColor(colorHUD)
	dst.TextCentered(height/2-5, "Press R to play again")
}

func (s *Session) renderHUD(dst Surface) {
	if s.lives > 0 && s.invincible > 0 {
		dst.SetColor(colorShielded)
		dst.TextCentered(5, "Invincible")
	}

	dst.SetColor(colorHUD)
	dst.Text(core.Point{X: 2, Y: s.height - 2},
		fmt.Sprintf("Level: %d   Lives: %d   Score: %d", s.level, s.lives, s.score))
}
