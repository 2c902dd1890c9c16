package scene

// Nominal dimensions of the Ohm schematic, multiplied by the scene scale.
const (
	batteryWidth    = 60.0
	batteryHeight   = 40.0
	batteryOffsetX  = 150.0 // battery center sits this far left of the scene center
	meterOffsetX    = 150.0 // meter center sits this far right of the scene center
	meterRadius     = 30.0
	zigzagSpan      = 100.0 // horizontal span of the resistor zig-zag
	zigzagAmplitude = 12.0  // vertical excursion of the interior vertices
	zigzagVertices  = 9
	returnDropY     = 80.0 // how far below the centerline the return rail runs
)

// OhmLayout is the layout record for the Ohm's-law scene, indexed by the
// well-known anchors of the schematic.
type OhmLayout struct {
	Scale float64

	BatteryRect           Rect
	BatteryTerminalTop    Point
	BatteryTerminalBottom Point

	ResistorRect   Rect
	ResistorZigzag []Point // ordered, 9 vertices

	MeterCenter Point
	MeterRadius float64
	NeedlePivot Point

	// WirePath is the closed polyline battery-positive, resistor-left,
	// resistor-right, meter-left, meter-right, return-down, return-across,
	// battery-negative. The final segment back to the start is implicit.
	WirePath []Point
}

// ComposeOhm lays out the Ohm scene for a surface of the given pixel size.
// The scene is centered on the surface center and scaled by ScaleFor.
func ComposeOhm(width, height float64) OhmLayout {
	s := ScaleFor(width, height)
	cx := width / 2
	cy := height / 2

	battery := Rect{
		X: cx - batteryOffsetX*s - batteryWidth*s/2,
		Y: cy - batteryHeight*s/2,
		W: batteryWidth * s,
		H: batteryHeight * s,
	}
	terminalTop := Point{X: cx - batteryOffsetX*s, Y: battery.Y}
	terminalBottom := Point{X: cx - batteryOffsetX*s, Y: battery.Y + battery.H}

	zigzag := make([]Point, zigzagVertices)
	left := cx - zigzagSpan*s/2
	step := zigzagSpan * s / float64(zigzagVertices-1)
	for i := range zigzag {
		y := cy
		switch {
		case i == 0 || i == zigzagVertices-1:
			// endpoints stay on the midline
		case i%2 == 1:
			y = cy - zigzagAmplitude*s
		default:
			y = cy + zigzagAmplitude*s
		}
		zigzag[i] = Point{X: left + float64(i)*step, Y: y}
	}
	resistor := Rect{
		X: left,
		Y: cy - zigzagAmplitude*s,
		W: zigzagSpan * s,
		H: 2 * zigzagAmplitude * s,
	}

	meterCenter := Point{X: cx + meterOffsetX*s, Y: cy}
	radius := meterRadius * s

	wire := []Point{
		terminalTop,                               // battery-positive
		{X: left, Y: cy},                          // resistor-left
		{X: left + zigzagSpan*s, Y: cy},           // resistor-right
		{X: meterCenter.X - radius, Y: cy},        // meter-left
		{X: meterCenter.X + radius, Y: cy},        // meter-right
		{X: meterCenter.X + radius, Y: cy + returnDropY*s}, // return-down
		{X: terminalBottom.X, Y: cy + returnDropY*s},       // return-across
		terminalBottom, // battery-negative
	}

	return OhmLayout{
		Scale:                 s,
		BatteryRect:           battery,
		BatteryTerminalTop:    terminalTop,
		BatteryTerminalBottom: terminalBottom,
		ResistorRect:          resistor,
		ResistorZigzag:        zigzag,
		MeterCenter:           meterCenter,
		MeterRadius:           radius,
		NeedlePivot:           meterCenter,
		WirePath:              wire,
	}
}
