// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies on the terminal toolkit (no Bubble Tea) to
// keep game logic pure and testable.
package core

import (
	"math"
	"math/rand"
)

// Rect represents an axis-aligned rectangle of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Point is a position in continuous world space.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Rotate returns p rotated counter-clockwise by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Box is an axis-aligned bounding box in world space with open edges.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxAround returns the box extending half in every direction from the center.
func BoxAround(center Point, half float64) Box {
	return Box{
		MinX: center.X - half,
		MinY: center.Y - half,
		MaxX: center.X + half,
		MaxY: center.Y + half,
	}
}

// Contains reports whether p lies strictly inside the box.
func (b Box) Contains(p Point) bool {
	return p.X > b.MinX && p.X < b.MaxX && p.Y > b.MinY && p.Y < b.MaxY
}

// PointInPolygon tests containment by casting a vertical ray from p and counting
// crossed edges; an odd count means inside. Vertical edges never count, which
// keeps the slope division safe.
func PointInPolygon(poly []Point, p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	crossings := 0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		spans := (a.X < p.X && p.X <= b.X) || (b.X < p.X && p.X <= a.X)
		if !spans {
			continue
		}
		edgeY := a.Y + (b.Y-a.Y)/(b.X-a.X)*(p.X-a.X)
		if p.Y > edgeY {
			crossings++
		}
	}
	return crossings%2 == 1
}

// RandRange returns a uniformly distributed value in [min, max).
func RandRange(rng *rand.Rand, min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
