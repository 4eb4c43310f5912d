// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It has no external dependencies (especially no
// Bubble Tea) so game logic stays pure and testable.
package core

// Span is a closed-open horizontal interval [Left, Right) in field units.
// Collision in LilyHop is one-dimensional, so spans replace bounding boxes.
type Span struct {
	Left, Right float64
}

// NewSpan creates a span starting at x with the given width.
func NewSpan(x, width float64) Span {
	return Span{Left: x, Right: x + width}
}

// Width returns the length of the span.
func (s Span) Width() float64 {
	return s.Right - s.Left
}

// Center returns the midpoint of the span.
func (s Span) Center() float64 {
	return (s.Left + s.Right) / 2
}

// Inset shrinks the span by margin on both edges.
// The result may be empty (Right <= Left) when the margin is large.
func (s Span) Inset(margin float64) Span {
	return Span{Left: s.Left + margin, Right: s.Right - margin}
}

// Empty reports whether the span has no interior (Right <= Left).
func (s Span) Empty() bool {
	return s.Right <= s.Left
}

// Overlaps returns true if the two spans share any interior point.
// Touching edges do not overlap and an empty span overlaps nothing.
func (s Span) Overlaps(other Span) bool {
	if s.Empty() || other.Empty() {
		return false
	}
	return s.Right > other.Left && s.Left < other.Right
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
