// Package scene turns a Parameter Model plus surface dimensions into a
// layout record of pixel coordinates. Composition is pure: no state is
// carried between frames.
package scene

import "math"

// NominalSize is the surface edge, in pixels, at which the schematic is
// drawn at its nominal dimensions.
const NominalSize = 600.0

// Point is a position in surface pixels.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned pixel rectangle anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Lerp returns the point a fraction u of the way from a to b.
func Lerp(a, b Point, u float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*u,
		Y: a.Y + (b.Y-a.Y)*u,
	}
}

// ScaleFor returns the scene scale factor for a surface, so the schematic
// grows proportionally and never overflows a surface at least NominalSize
// pixels on one axis.
func ScaleFor(width, height float64) float64 {
	return math.Min(width, height) / NominalSize
}

// roundHalfAway rounds to the nearest integer, halves away from zero.
func roundHalfAway(x float64) int {
	return int(math.Round(x))
}
