// Package geo provides the small set of planar geometry primitives shared by
// the diagram model and the render backends.
//
// All values are in diagram data units unless a function documents otherwise.
// The coordinate system is mathematical: x grows rightward, y grows upward.
// Rectangles are anchored at their lower-left corner.
package geo

import "math"

// =============================================================================
// Point
// =============================================================================

// Point is a position in the diagram plane.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Length returns the euclidean length of p treated as a vector.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Unit returns the unit vector pointing from p toward q.
// Returns the zero vector when the points coincide.
func (p Point) Unit(q Point) Point {
	d := q.Sub(p)
	l := d.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: d.X / l, Y: d.Y / l}
}

// =============================================================================
// Rect
// =============================================================================

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X float64 // left edge
	Y float64 // bottom edge
	W float64
	H float64
}

// RectFromCenter constructs a Rect centered on c.
func RectFromCenter(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the top edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// ContainsPoint reports whether p lies inside r (edges inclusive).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// ContainsRect reports whether s lies entirely inside r (edges inclusive).
func (r Rect) ContainsRect(s Rect) bool {
	return s.X >= r.X && s.Y >= r.Y && s.MaxX() <= r.MaxX() && s.MaxY() <= r.MaxY()
}

// Union returns the smallest rectangle covering both r and s.
// An empty rectangle acts as the identity.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0 := math.Min(r.X, s.X)
	y0 := math.Min(r.Y, s.Y)
	x1 := math.Max(r.MaxX(), s.MaxX())
	y1 := math.Max(r.MaxY(), s.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Expand returns r grown by m on every side.
// Negative margins shrink the rectangle.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// =============================================================================
// Bounds
// =============================================================================

// Bounds accumulates the bounding box of a sequence of rectangles and points.
// Unlike Rect.Union it handles degenerate inputs: a single point produces a
// zero-area box at that point rather than being swallowed as empty.
type Bounds struct {
	set                    bool
	minX, minY, maxX, maxY float64
}

// AddPoint extends the bounds to cover p.
func (b *Bounds) AddPoint(p Point) {
	if !b.set {
		b.set = true
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		return
	}
	b.minX = math.Min(b.minX, p.X)
	b.maxX = math.Max(b.maxX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxY = math.Max(b.maxY, p.Y)
}

// AddRect extends the bounds to cover r.
func (b *Bounds) AddRect(r Rect) {
	b.AddPoint(Point{X: r.X, Y: r.Y})
	b.AddPoint(Point{X: r.MaxX(), Y: r.MaxY()})
}

// Valid reports whether anything has been accumulated.
func (b *Bounds) Valid() bool { return b.set }

// Rect returns the accumulated bounding box.
// The zero Bounds returns the zero Rect.
func (b *Bounds) Rect() Rect {
	if !b.set {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, W: b.maxX - b.minX, H: b.maxY - b.minY}
}
