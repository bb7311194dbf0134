// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle on the cell grid.
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

// Box is an axis-aligned bounding box in world units (virtual pixels).
// Y grows downward, as on screen.
type Box struct {
	Left, Right float64
	Top, Bottom float64
}

// BoxOf converts a cell rectangle into a box using the given cell size.
func BoxOf(r Rect, cellW, cellH float64) Box {
	return Box{
		Left:   float64(r.X) * cellW,
		Right:  float64(r.Right()) * cellW,
		Top:    float64(r.Y) * cellH,
		Bottom: float64(r.Bottom()) * cellH,
	}
}

// Inset shrinks the box by m on all four sides.
// The result may be inverted (Left > Right) when m exceeds half the size.
func (b Box) Inset(m float64) Box {
	return Box{
		Left:   b.Left + m,
		Right:  b.Right - m,
		Top:    b.Top + m,
		Bottom: b.Bottom - m,
	}
}
