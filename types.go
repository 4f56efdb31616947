package knobs

import "github.com/chewxy/math32"

// Vector represents a 2D vector for positions, sizes and scales.
type Vector struct {
	X, Y float32
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vector) Div(s float32) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negated vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// IsZero reports whether both components are zero.
// A zero size means "auto-size" for content-measuring behaviors.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned rectangle. Position is relative to the parent
// element's origin.
type Rect struct {
	Position Vector
	Size     Vector
}

// NewRect creates a rectangle from position and size components.
func NewRect(x, y, width, height float32) Rect {
	return Rect{Position: Vector{X: x, Y: y}, Size: Vector{X: width, Y: height}}
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Size.X }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Size.Y }

// SetWidth sets the horizontal extent.
func (r *Rect) SetWidth(w float32) { r.Size.X = w }

// SetHeight sets the vertical extent.
func (r *Rect) SetHeight(h float32) { r.Size.Y = h }

// SetX places the rectangle so that the point at fraction origin of its width
// lands on x. origin 0 anchors the left edge, 0.5 the center, 1 the right edge.
func (r *Rect) SetX(x, origin float32) {
	r.Position.X = x - r.Size.X*origin
}

// SetY places the rectangle so that the point at fraction origin of its height
// lands on y.
func (r *Rect) SetY(y, origin float32) {
	r.Position.Y = y - r.Size.Y*origin
}

// Contains reports whether p lies inside the rectangle. Edges are inclusive.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Position.X && p.X <= r.Position.X+r.Size.X &&
		p.Y >= r.Position.Y && p.Y <= r.Position.Y+r.Size.Y
}

// Center returns the center point.
func (r Rect) Center() Vector {
	return Vector{X: r.Position.X + r.Size.X/2, Y: r.Position.Y + r.Size.Y/2}
}

// Translated returns the rectangle moved by v.
func (r Rect) Translated(v Vector) Rect {
	return Rect{Position: r.Position.Add(v), Size: r.Size}
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Position.X < other.Position.X+other.Size.X && r.Position.X+r.Size.X > other.Position.X &&
		r.Position.Y < other.Position.Y+other.Size.Y && r.Position.Y+r.Size.Y > other.Position.Y
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	return math32.Max(minVal, math32.Min(maxVal, v))
}
