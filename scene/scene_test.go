package scene

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestScaleFor(t *testing.T) {
	assert.Equal(t, 1.0, ScaleFor(600, 600))
	assert.Equal(t, 1.0, ScaleFor(900, 600)) // shorter axis wins
	assert.Equal(t, 0.5, ScaleFor(300, 800))
	assert.Equal(t, 2.0, ScaleFor(1200, 1600))
}

func TestComposeOhmAnchors(t *testing.T) {
	l := ComposeOhm(600, 600)

	assert.Equal(t, 1.0, l.Scale)

	// Battery centered 150 px left of the scene center.
	assert.Equal(t, 120.0, l.BatteryRect.X) // 300 - 150 - 30
	assert.Equal(t, 280.0, l.BatteryRect.Y)
	assert.Equal(t, 60.0, l.BatteryRect.W)
	assert.Equal(t, 40.0, l.BatteryRect.H)
	assert.Equal(t, Point{X: 150, Y: 280}, l.BatteryTerminalTop)
	assert.Equal(t, Point{X: 150, Y: 320}, l.BatteryTerminalBottom)

	// Meter centered 150 px right of the scene center.
	assert.Equal(t, Point{X: 450, Y: 300}, l.MeterCenter)
	assert.Equal(t, 30.0, l.MeterRadius)
	assert.Equal(t, l.MeterCenter, l.NeedlePivot)
}

func TestComposeOhmZigzag(t *testing.T) {
	l := ComposeOhm(600, 600)
	z := l.ResistorZigzag

	assert.Equal(t, 9, len(z))

	// Even spacing across the 100 px span, centered on the scene.
	assert.Equal(t, Point{X: 250, Y: 300}, z[0])
	assert.Equal(t, Point{X: 350, Y: 300}, z[8])
	for i := 1; i < len(z); i++ {
		assert.Equal(t, 12.5, z[i].X-z[i-1].X)
	}

	// Interior vertices alternate above and below the midline.
	assert.Equal(t, 288.0, z[1].Y)
	assert.Equal(t, 312.0, z[2].Y)
	assert.Equal(t, 288.0, z[7].Y)
}

func TestComposeOhmWirePath(t *testing.T) {
	l := ComposeOhm(600, 600)
	w := l.WirePath

	assert.Equal(t, 8, len(w))
	assert.Equal(t, l.BatteryTerminalTop, w[0])
	assert.Equal(t, l.ResistorZigzag[0], w[1])
	assert.Equal(t, l.ResistorZigzag[8], w[2])
	assert.Equal(t, Point{X: 420, Y: 300}, w[3]) // meter-left
	assert.Equal(t, Point{X: 480, Y: 300}, w[4]) // meter-right
	assert.Equal(t, Point{X: 480, Y: 380}, w[5]) // return-down
	assert.Equal(t, Point{X: 150, Y: 380}, w[6]) // return-across
	assert.Equal(t, l.BatteryTerminalBottom, w[7])
}

func TestComposeOhmScalesWithSurface(t *testing.T) {
	l := ComposeOhm(1200, 1200)

	assert.Equal(t, 2.0, l.Scale)
	assert.Equal(t, Point{X: 900, Y: 600}, l.MeterCenter)
	assert.Equal(t, 60.0, l.MeterRadius)
	assert.Equal(t, 120.0, l.BatteryRect.W)
}

func TestWindingCounts(t *testing.T) {
	testCases := []struct {
		k float64
		p int // primary coils
		q int // secondary coils
	}{
		{k: 1, p: 4, q: 4},     // floor keeps at least 4 primary coils
		{k: 10, p: 4, q: 1},    // 10/2.5 = 4 exactly
		{k: 20, p: 8, q: 1},
		{k: 50, p: 20, q: 1},
		{k: 2.5, p: 4, q: 2}, // 4/2.5 = 1.6 rounds to 2
	}

	for _, tc := range testCases {
		p, q := WindingCounts(tc.k)
		assert.Equal(t, tc.p, p)
		assert.Equal(t, tc.q, q)
	}
}

func TestComposeTransformer(t *testing.T) {
	l := ComposeTransformer(600, 600, 20)

	// Core is a vertical bar through the scene center.
	assert.Equal(t, Rect{X: 280, Y: 180, W: 40, H: 240}, l.CoreRect)

	assert.Equal(t, 8, len(l.PrimaryCoils))
	assert.Equal(t, 1, len(l.SecondaryCoils))
	assert.Equal(t, 18.0, l.CoilRadius)

	// Coil columns sit either side of the core, stacked around the midline.
	assert.Equal(t, 235.0, l.PrimaryCoils[0].X)
	assert.Equal(t, 365.0, l.SecondaryCoils[0].X)
	assert.Equal(t, 300.0, l.SecondaryCoils[0].Y)
	mid := (l.PrimaryCoils[0].Y + l.PrimaryCoils[7].Y) / 2
	assert.Equal(t, 300.0, mid)

	// Five flux bands exactly tile the core.
	assert.Equal(t, 5, len(l.FluxBands))
	assert.Equal(t, l.CoreRect.X, l.FluxBands[0].X)
	for i, b := range l.FluxBands {
		assert.Equal(t, 8.0, b.W)
		assert.Equal(t, l.CoreRect.X+float64(i)*8, b.X)
		assert.Equal(t, l.CoreRect.H, b.H)
	}

	assert.Equal(t, Point{X: 150, Y: 140}, l.PrimaryMeterCenter)
	assert.Equal(t, Point{X: 450, Y: 140}, l.SecondaryMeterCenter)
}

func TestComposeTransformerCoilSpacingCompresses(t *testing.T) {
	// At k=50 the primary stack has 20 coils; the spacing compresses so the
	// stack stays inside the core height.
	l := ComposeTransformer(600, 600, 50)
	assert.Equal(t, 20, len(l.PrimaryCoils))

	spacing := l.PrimaryCoils[1].Y - l.PrimaryCoils[0].Y
	assert.Equal(t, 10.0, spacing) // (240-40)/20, down from the nominal 25
	span := l.PrimaryCoils[19].Y - l.PrimaryCoils[0].Y
	assert.Assert(t, span < l.CoreRect.H)
}

func TestComposeMotor(t *testing.T) {
	l := ComposeMotor(600, 600)

	assert.Equal(t, Point{X: 300, Y: 300}, l.StatorCenter)
	assert.Equal(t, 120.0, l.StatorRadius)
	assert.Equal(t, 90.0, l.RotorLength)

	assert.Equal(t, 4, len(l.FieldLines))
	for i := 1; i < len(l.FieldLines); i++ {
		assert.Equal(t, 48.0, l.FieldLines[i][0].Y-l.FieldLines[i-1][0].Y)
	}
	// Field lines stay inside the stator vertically.
	assert.Assert(t, l.FieldLines[0][0].Y > l.StatorCenter.Y-l.StatorRadius)
	assert.Assert(t, l.FieldLines[3][0].Y < l.StatorCenter.Y+l.StatorRadius)
}

func TestLerp(t *testing.T) {
	a := Point{X: 0, Y: 10}
	b := Point{X: 10, Y: 30}
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, Point{X: 5, Y: 20}, Lerp(a, b, 0.5))
}

func TestRoundHalfAway(t *testing.T) {
	assert.Equal(t, 2, roundHalfAway(1.5))
	assert.Equal(t, 1, roundHalfAway(1.4))
	assert.Equal(t, -2, roundHalfAway(-1.5))
}
