// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
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

// Box is a float axis-aligned box in world pixels.
// Used for player and platform collision.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps returns true if the interiors of the two boxes intersect.
// Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.Right() && b.Right() > other.X &&
		b.Y < other.Bottom() && b.Bottom() > other.Y
}

// Point is a 2D point in a local or world coordinate frame.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// RotatePoint rotates p around center by angle radians.
// Positive angles rotate clockwise on screen (y grows downward).
func RotatePoint(p, center Point, angle float64) Point {
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	dx, dy := p.X-center.X, p.Y-center.Y
	return Point{
		X: cosA*dx - sinA*dy + center.X,
		Y: sinA*dx + cosA*dy + center.Y,
	}
}

// Polygon is a closed polygon; the last point connects back to the first.
type Polygon []Point

// Rotate returns a new polygon with every point rotated around center.
func (poly Polygon) Rotate(center Point, angle float64) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = RotatePoint(p, center, angle)
	}
	return out
}

// Translate returns a new polygon shifted by (dx, dy).
func (poly Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = p.Add(dx, dy)
	}
	return out
}

// Bounds returns the bounding box of the polygon.
func (poly Polygon) Bounds() Box {
	if len(poly) == 0 {
		return Box{}
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether (x, y) lies inside the polygon (even-odd rule).
func (poly Polygon) Contains(x, y float64) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > y) != (pj.Y > y) {
			crossX := (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if x < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// LimbPolygon builds a quad of the given width along the segment start->end.
// Points are ordered start+perp, start-perp, end-perp, end+perp.
func LimbPolygon(start, end Point, width float64) Polygon {
	angle := math.Atan2(end.Y-start.Y, end.X-start.X)
	perp := angle + math.Pi/2
	ox, oy := math.Cos(perp)*width/2, math.Sin(perp)*width/2
	return Polygon{
		{X: start.X + ox, Y: start.Y + oy},
		{X: start.X - ox, Y: start.Y - oy},
		{X: end.X - ox, Y: end.Y - oy},
		{X: end.X + ox, Y: end.Y + oy},
	}
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

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
