package anim

import (
	"math"

	"github.com/voltbench/widgets/scene"
)

// meterFullScale is the current, in amperes, at which the needle pegs.
const meterFullScale = 5.0

// NeedleAngle returns the needle deflection in radians measured clockwise
// from straight-up. For i >= 5 the needle is pegged at pi exactly.
func NeedleAngle(i float64) float64 {
	frac := i / meterFullScale
	if frac >= 1 {
		return math.Pi
	}
	if frac < 0 {
		frac = 0
	}
	return frac * math.Pi
}

// drawMeter paints the ammeter dial. The needle is drawn separately, with
// the animated overlays.
func drawMeter(cv Canvas, center scene.Point, radius float64) {
	cv.FillCircle(center, radius, colDial)
	cv.StrokeCircle(center, radius, 2, colOutline)
	cv.FillCircle(center, 3, colOutline)
}

// drawNeedle paints the needle at the deflection for current i.
func drawNeedle(cv Canvas, pivot scene.Point, radius, i float64) {
	angle := NeedleAngle(i)
	length := radius - 5
	tip := scene.Point{
		X: pivot.X + math.Sin(angle)*length,
		Y: pivot.Y - math.Cos(angle)*length,
	}
	cv.StrokeLine(pivot, tip, 3, colNeedle)
}
