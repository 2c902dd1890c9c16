package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltbench/widgets/scene"
)

func TestParticleCount(t *testing.T) {
	testCases := []struct {
		name     string
		current  float64 // amperes
		expected int
	}{
		{name: "below threshold draws nothing", current: 0.05, expected: 0},
		{name: "threshold floor of three", current: 0.1, expected: 3},
		{name: "two amperes", current: 2, expected: 18},
		{name: "full scale caps at thirty-two", current: 10, expected: 32},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParticleCount(tc.current))
		})
	}
}

// Count never decreases as the current rises across its range.
func TestParticleCountMonotonic(t *testing.T) {
	prev := ParticleCount(0.1)
	for i := 0.1; i <= 10; i += 0.01 {
		n := ParticleCount(i)
		assert.GreaterOrEqual(t, n, prev, "current %f", i)
		prev = n
	}
}

func TestParticleRadius(t *testing.T) {
	assert.InDelta(t, 2.02, ParticleRadius(0.1), 1e-9)
	assert.InDelta(t, 2.4, ParticleRadius(2), 1e-9)
	assert.InDelta(t, 4.0, ParticleRadius(10), 1e-9)
}

// Doubling the current speeds the phase up by sqrt(2), not 2.
func TestParticlePhaseSquareRootPacing(t *testing.T) {
	const t0 = 0.01 // small enough that neither phase wraps
	ratio := ParticlePhase(t0, 2) / ParticlePhase(t0, 1)
	assert.InEpsilon(t, math.Sqrt2, ratio, 0.01)
}

func TestParticlePhaseWraps(t *testing.T) {
	p := ParticlePhase(1234.5, 7)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.Less(t, p, 1.0)
}

// A square wire path, two points per conduction segment.
func squareWire() []scene.Point {
	return []scene.Point{
		{X: 0, Y: 0}, {X: 100, Y: 0},
		{X: 100, Y: 0}, {X: 100, Y: 100},
		{X: 100, Y: 100}, {X: 0, Y: 100},
		{X: 0, Y: 100}, {X: 0, Y: 0},
	}
}

func TestParticlePointInterpolates(t *testing.T) {
	wire := squareWire()

	// Midway through the first sub-interval.
	pt, alpha := ParticlePoint(wire, 0.125)
	assert.Equal(t, scene.Point{X: 50, Y: 0}, pt)
	assert.Equal(t, 1.0, alpha)

	// Midway through the third.
	pt, alpha = ParticlePoint(wire, 0.625)
	assert.Equal(t, scene.Point{X: 50, Y: 100}, pt)
	assert.Equal(t, 1.0, alpha)
}

func TestParticlePointSeamFade(t *testing.T) {
	wire := squareWire()

	// Entering the first sub-interval: alpha ramps up over the fade width.
	_, alpha := ParticlePoint(wire, 0.01)
	assert.InDelta(t, 0.5, alpha, 1e-9)

	// Leaving the last sub-interval: alpha ramps back down.
	_, alpha = ParticlePoint(wire, 0.99)
	assert.InDelta(t, 0.5, alpha, 1e-9)

	// Interior boundaries do not fade.
	_, alpha = ParticlePoint(wire, 0.251)
	assert.Equal(t, 1.0, alpha)
	_, alpha = ParticlePoint(wire, 0.499)
	assert.Equal(t, 1.0, alpha)
}

func TestNeedleAngle(t *testing.T) {
	assert.Equal(t, 0.0, NeedleAngle(0))
	assert.Equal(t, 0.4*math.Pi, NeedleAngle(2))
	assert.Equal(t, math.Pi/2, NeedleAngle(2.5))

	// At and beyond full scale the needle pegs at pi exactly, no drift.
	assert.Equal(t, math.Pi, NeedleAngle(5))
	assert.Equal(t, math.Pi, NeedleAngle(10))
}

func TestFluxAlpha(t *testing.T) {
	assert.InDelta(t, 0.4, FluxAlpha(0, 0), 1e-9)
	assert.InDelta(t, 0.4+0.6*math.Sin(0.8), FluxAlpha(10, 0), 1e-9)

	// Bands trail each other by a fixed phase offset.
	assert.InDelta(t, 0.4+0.6*math.Sin(0.8+0.4*2), FluxAlpha(10, 2), 1e-9)
}

func TestWithAlphaClamps(t *testing.T) {
	assert.Equal(t, uint8(0), withAlpha(colAmber, -0.5).A)
	assert.Equal(t, uint8(255), withAlpha(colAmber, 1.5).A)
	assert.Equal(t, uint8(127), withAlpha(colAmber, 0.5).A)
}
