package anim

import (
	"math"

	"github.com/voltbench/widgets/params"
	"github.com/voltbench/widgets/scene"
)

const (
	// particleRate scales the phase advance; the square root keeps the
	// visual distinguishable across the current range without saturating.
	particleRate = 3.0

	// maxParticles bounds per-frame drawing cost.
	maxParticles = 32

	// seamFadeWidth is the phase distance from a sub-interval boundary
	// within which particles fade out to hide the path seam.
	seamFadeWidth = 0.02
)

// ParticlePhase returns the master phase in [0,1) for the animation clock t
// and current i. Phase advances at 3*sqrt(i) cycles per second.
func ParticlePhase(t, i float64) float64 {
	return math.Mod(t*particleRate*math.Sqrt(math.Max(i, params.Epsilon)), 1)
}

// ParticleCount returns the number of charge carriers drawn for current i.
// Zero below the 0.1 A threshold; the threshold is inclusive at and above
// 0.1 after range clamping.
func ParticleCount(i float64) int {
	if i < params.OhmCurrentRange.Lo {
		return 0
	}
	n := int(math.Floor(i*8)) + 2
	if n < 3 {
		n = 3
	}
	if n > maxParticles {
		n = maxParticles
	}
	return n
}

// ParticleRadius returns the disc radius in pixels for current i.
func ParticleRadius(i float64) float64 {
	return math.Max(2, 2+i*0.2)
}

// ParticlePoint maps a phase in [0,1) onto the wire path. The unit interval
// is divided into four equal sub-intervals, one per conduction segment of
// the wire; within each the phase interpolates linearly along the segment.
// The return leg's corners are cut briefly, matching the observable
// behavior; the seam is hidden by the alpha fade.
func ParticlePoint(wire []scene.Point, phase float64) (pt scene.Point, alpha float64) {
	phase = math.Mod(phase, 1)
	if phase < 0 {
		phase += 1
	}

	seg := int(phase * 4)
	if seg > 3 {
		seg = 3
	}
	u := phase*4 - float64(seg)

	// Sub-interval -> wire segment endpoints: battery to resistor-in,
	// resistor-out to meter-in, meter-out to return-vertical,
	// return-horizontal to battery-negative.
	a := wire[seg*2]
	b := wire[seg*2+1]
	pt = scene.Lerp(a, b, u)

	alpha = 1.0
	if seg == 0 || seg == 3 {
		lower := float64(seg) * 0.25
		upper := lower + 0.25
		edge := math.Min(phase-lower, upper-phase)
		if edge < seamFadeWidth {
			alpha = edge / seamFadeWidth
		}
	}
	return pt, alpha
}

// drawParticles renders the charge carriers for current i at clock t.
func drawParticles(cv Canvas, wire []scene.Point, t, i float64) {
	n := ParticleCount(i)
	if n == 0 {
		return
	}

	theta := ParticlePhase(t, i)
	radius := ParticleRadius(i)
	for k := 0; k < n; k++ {
		phase := math.Mod(theta+float64(k)/float64(n), 1)
		pt, alpha := ParticlePoint(wire, phase)
		// Additive-looking halo, then the disc.
		cv.FillCircle(pt, radius+2, withAlpha(colAmber, 0.25*alpha))
		cv.FillCircle(pt, radius, withAlpha(colAmber, alpha))
	}
}
