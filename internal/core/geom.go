// Package core provides fundamental types and utilities for the climber.
// It contains no external dependencies to keep generation logic pure and
// testable.
package core

import "math"

// Rect is an axis-aligned rectangle in world units.
// X is the left edge and Y the row baseline; the world y axis points up.
type Rect struct {
	X, Y float64 // Left edge, baseline
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// HorizontalGap returns the free horizontal distance between two rectangles.
// Overlapping x-extents yield a negative value (the overlap depth).
func (r Rect) HorizontalGap(other Rect) float64 {
	if r.X >= other.X {
		return r.X - other.Right()
	}
	return other.X - r.Right()
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
	return math.Max(min, math.Min(max, val))
}

// FloorDiv divides a by b and rounds toward negative infinity.
func FloorDiv(a, b float64) int {
	return int(math.Floor(a / b))
}
