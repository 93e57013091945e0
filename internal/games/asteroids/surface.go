package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ScreenSurface rasterizes world-space vector drawing onto a character screen.
// The whole world maps onto the screen, with world y=0 on the bottom row.
type ScreenSurface struct {
	screen        *core.Screen
	width, height float64
}

// NewScreenSurface creates a surface projecting a width x height world onto dst.
func NewScreenSurface(dst *core.Screen, width, height float64) *ScreenSurface {
	return &ScreenSurface{screen: dst, width: width, height: height}
}

// Project maps a world point to a screen cell.
func (s *ScreenSurface) Project(p core.Point) (int, int) {
	cols := float64(s.screen.Width() - 1)
	rows := float64(s.screen.Height() - 1)
	x := int(math.Round(p.X / s.width * cols))
	y := int(math.Round((s.height - p.Y) / s.height * rows))
	return x, y
}

// Clear blanks the screen.
func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

// SetColor selects the nearest terminal color for subsequent drawing.
func (s *ScreenSurface) SetColor(c RGB) {
	s.screen.SetPen(core.NearestColor(c.R, c.G, c.B))
}

// LineLoop draws a closed polyline.
func (s *ScreenSurface) LineLoop(pts ...core.Point) {
	if len(pts) == 0 {
		return
	}
	for i := range pts {
		x0, y0 := s.Project(pts[i])
		x1, y1 := s.Project(pts[(i+1)%len(pts)])
		s.screen.DrawLine(x0, y0, x1, y1, lineGlyph(x1-x0, y1-y0))
	}
}

// lineGlyph picks a character that follows the slope of a segment in screen space.
func lineGlyph(dx, dy int) rune {
	adx, ady := core.Abs(dx), core.Abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return '·'
	case adx > 2*ady:
		return '-'
	case ady > 2*adx:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// Disc fills an ellipse covering radius world units around center.
// At least the center cell is always drawn.
func (s *ScreenSurface) Disc(center core.Point, radius float64) {
	cx, cy := s.Project(center)
	rx := radius / s.width * float64(s.screen.Width()-1)
	ry := radius / s.height * float64(s.screen.Height()-1)

	s.screen.Set(cx, cy, '●')
	for dy := -int(ry); dy <= int(ry); dy++ {
		for dx := -int(rx); dx <= int(rx); dx++ {
			nx, ny := float64(dx)/math.Max(rx, 1), float64(dy)/math.Max(ry, 1)
			if nx*nx+ny*ny <= 1 {
				s.screen.Set(cx+dx, cy+dy, '●')
			}
		}
	}
}

// Text draws a string starting at a world position.
func (s *ScreenSurface) Text(at core.Point, text string) {
	x, y := s.Project(at)
	s.screen.DrawText(x, y, text)
}

// TextCentered draws a string centered horizontally at world height y.
func (s *ScreenSurface) TextCentered(y float64, text string) {
	_, row := s.Project(core.Point{Y: y})
	s.screen.DrawTextCentered(row, text)
}

// Present is a no-op: the platform displays the screen after Render returns.
func (s *ScreenSurface) Present() {}
