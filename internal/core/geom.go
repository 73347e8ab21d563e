// Package core provides fundamental types and utilities shared by the maze
// game, its physics collaborator and the front ends. It has no dependency on
// Bubble Tea so that game logic stays pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. World space has Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Div divides both components by k.
func (v Vec2) Div(k float64) Vec2 {
	return Vec2{X: v.X / k, Y: v.Y / k}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned box in world units, stored by its centre and half
// extents so it lines up with how tiles are positioned.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// BoxAt creates a box of the given full size centred on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{Center: c, HalfW: w / 2, HalfH: h / 2}
}

// Min returns the lower-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.HalfW, Y: b.Center.Y - b.HalfH}
}

// Max returns the upper-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.HalfW, Y: b.Center.Y + b.HalfH}
}

// Intersects returns true if the boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	bmin, bmax := b.Min(), b.Max()
	omin, omax := o.Min(), o.Max()
	if bmin.X >= omax.X || omin.X >= bmax.X {
		return false
	}
	if bmin.Y >= omax.Y || omin.Y >= bmax.Y {
		return false
	}
	return true
}

// CirclesOverlap reports whether two circles overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	d := b.Sub(a)
	r := ra + rb
	return d.X*d.X+d.Y*d.Y < r*r
}

// CircleBoxOverlap reports whether a circle overlaps an axis-aligned box.
func CircleBoxOverlap(c Vec2, r float64, b Box) bool {
	lo, hi := b.Min(), b.Max()
	nearest := Vec2{X: ClampF(c.X, lo.X, hi.X), Y: ClampF(c.Y, lo.Y, hi.Y)}
	d := c.Sub(nearest)
	return d.X*d.X+d.Y*d.Y < r*r
}

// Rect represents an axis-aligned rectangle in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
