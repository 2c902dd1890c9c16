// Package params holds the user-settable scalars for each widget and the
// closed-form derivations computed from them. Models are plain records;
// every update is a whole-record replacement so derived quantities stay
// consistent within a frame.
package params

import "math"

// Epsilon is the floor substituted for derivation denominators that would
// otherwise collapse towards zero.
const Epsilon = 1e-6

// Range is an inclusive [Lo, Hi] bound for a user-settable scalar.
type Range struct {
	Lo float64
	Hi float64
}

// Clamp maps x into the range. Out-of-range values are clamped silently;
// NaN and infinities are replaced by the range midpoint.
func (r Range) Clamp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return r.Midpoint()
	}
	return math.Min(r.Hi, math.Max(r.Lo, x))
}

// Midpoint returns (Lo+Hi)/2, the substitute for non-finite input.
func (r Range) Midpoint() float64 {
	return (r.Lo + r.Hi) / 2
}

// ClampInt clamps x to an integer in the range. The midpoint of an integer
// range is truncated towards Lo so the stored value stays integral.
func (r Range) ClampInt(x float64) int {
	return int(r.Clamp(x))
}

// guardDenominator keeps derivation denominators away from zero.
func guardDenominator(d float64) float64 {
	if d < Epsilon {
		return Epsilon
	}
	return d
}
