package common

import "math"

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Contains reports whether the point lies inside r, edges included on the
// top-left and excluded on the bottom-right.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Union returns the smallest rectangle covering both.
func (r Rect) Union(other Rect) Rect {
	l := math.Min(r.X, other.X)
	t := math.Min(r.Y, other.Y)
	rr := math.Max(r.Right(), other.Right())
	b := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: l, Y: t, W: rr - l, H: b - t}
}
