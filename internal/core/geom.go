// Package core provides fundamental types and utilities for the platformer
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Vector is an immutable 2D point or displacement in level coordinates.
// One unit corresponds to one background tile. Operations return new
// values; a Vector is never mutated in place.
type Vector struct {
	X, Y float64
}

// V is a shorthand constructor for Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the component-wise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by factor. Scaling a speed by a time delta
// yields the distance covered in that time.
func (v Vector) Times(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Rect is an axis-aligned bounding box in level coordinates, described by
// its top-left corner and size.
type Rect struct {
	Pos  Vector
	Size Vector
}

// Overlap reports whether two rectangles intersect with nonzero area.
// All four comparisons are strict, so rectangles that merely touch along
// an edge do not overlap.
func Overlap(a, b Rect) bool {
	return a.Pos.X+a.Size.X > b.Pos.X &&
		a.Pos.X < b.Pos.X+b.Size.X &&
		a.Pos.Y+a.Size.Y > b.Pos.Y &&
		a.Pos.Y < b.Pos.Y+b.Size.Y
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
