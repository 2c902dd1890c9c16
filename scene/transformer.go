package scene

import "math"

// Nominal dimensions of the transformer schematic.
const (
	coreWidth      = 40.0
	coreHeight     = 240.0
	windingOffsetX = 65.0 // winding stacks sit this far either side of center
	coilRadius     = 18.0
	coilMaxSpacing = 25.0
	fluxBandCount  = 5
	meterOffsetY   = 160.0 // transformer meters sit this far above the centerline
	meterSpan      = 150.0 // and this far either side of center
)

// TransformerLayout is the layout record for both transformer scene variants.
type TransformerLayout struct {
	Scale float64

	CoreRect Rect

	// Winding coil centers, top to bottom. Primary on the left, secondary
	// on the right. Counts follow the turns ratio; at very high ratios the
	// stacks are emitted as-is with no overlap avoidance.
	PrimaryCoils   []Point
	SecondaryCoils []Point
	CoilRadius     float64

	// FluxBands are the vertical stripes through the core, left to right.
	FluxBands []Rect

	PrimaryMeterCenter   Point
	SecondaryMeterCenter Point
	MeterRadius          float64

	PrimaryLabel   Point
	SecondaryLabel Point
}

// WindingCounts maps the turns ratio k to primary and secondary coil counts.
// Half-way values round away from zero.
func WindingCounts(k float64) (p, q int) {
	p = roundHalfAway(k / 2.5)
	if p < 4 {
		p = 4
	}
	q = roundHalfAway(float64(p) / k)
	if q < 1 {
		q = 1
	}
	return p, q
}

// ComposeTransformer lays out the transformer scene for a surface of the
// given pixel size and turns ratio.
func ComposeTransformer(width, height, turnsRatio float64) TransformerLayout {
	s := ScaleFor(width, height)
	cx := width / 2
	cy := height / 2

	core := Rect{
		X: cx - coreWidth*s/2,
		Y: cy - coreHeight*s/2,
		W: coreWidth * s,
		H: coreHeight * s,
	}

	p, q := WindingCounts(turnsRatio)
	spacing := math.Min(coilMaxSpacing*s, (core.H-40)/float64(p))
	primary := coilColumn(cx-windingOffsetX*s, cy, p, spacing)
	secondary := coilColumn(cx+windingOffsetX*s, cy, q, spacing)

	bands := make([]Rect, fluxBandCount)
	bandW := core.W / fluxBandCount
	for i := range bands {
		bands[i] = Rect{X: core.X + float64(i)*bandW, Y: core.Y, W: bandW, H: core.H}
	}

	return TransformerLayout{
		Scale:                s,
		CoreRect:             core,
		PrimaryCoils:         primary,
		SecondaryCoils:       secondary,
		CoilRadius:           coilRadius * s,
		FluxBands:            bands,
		PrimaryMeterCenter:   Point{X: cx - meterSpan*s, Y: cy - meterOffsetY*s},
		SecondaryMeterCenter: Point{X: cx + meterSpan*s, Y: cy - meterOffsetY*s},
		MeterRadius:          meterRadius * s,
		PrimaryLabel:         Point{X: cx - meterSpan*s, Y: cy + coreHeight*s/2 + 30*s},
		SecondaryLabel:       Point{X: cx + meterSpan*s, Y: cy + coreHeight*s/2 + 30*s},
	}
}

// coilColumn returns n coil centers stacked vertically around cy.
func coilColumn(x, cy float64, n int, spacing float64) []Point {
	coils := make([]Point, n)
	top := cy - spacing*float64(n-1)/2
	for i := range coils {
		coils[i] = Point{X: x, Y: top + spacing*float64(i)}
	}
	return coils
}
