// Package core holds the types shared by games and the front-end: playfield
// geometry, pointer input, the screen buffer and the drawing surface. It has
// no Bubble Tea dependency so game logic stays pure and testable.
package core

// Point is a position in playfield coordinates.
// A pointer sample is passed around as *Point; nil means no contact.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in playfield coordinates.
// (X, Y) is the bottom-left corner; y grows upward.
type Rect struct {
	X, Y float64 // Bottom-left corner
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

// Contains returns true if the point (x, y) lies inside the rectangle.
// All four edges are inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Top()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Corners returns the four corners in sampling order:
// bottom-left, top-left, bottom-right, top-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X, Y: r.Top()},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Top()},
	}
}

// Shape is anything with an axis-aligned footprint on the playfield.
type Shape interface {
	Bounds() Rect
	Contains(x, y float64) bool
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
