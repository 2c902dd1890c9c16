package scene

// Nominal dimensions of the motor widget scene.
const (
	statorRadius   = 120.0
	rotorLength    = 90.0
	fieldLineCount = 4
)

// MotorLayout is the layout record for the DC motor scene.
type MotorLayout struct {
	Scale float64

	StatorCenter Point
	StatorRadius float64
	RotorLength  float64

	// FieldLines are horizontal field strokes through the stator, top to
	// bottom, each a start-end pair.
	FieldLines [][2]Point

	SpeedLabel Point
}

// ComposeMotor lays out the motor scene for a surface of the given pixel size.
func ComposeMotor(width, height float64) MotorLayout {
	s := ScaleFor(width, height)
	cx := width / 2
	cy := height / 2

	lines := make([][2]Point, fieldLineCount)
	span := statorRadius * s * 1.6
	step := statorRadius * s * 2 / float64(fieldLineCount+1)
	top := cy - statorRadius*s + step
	for i := range lines {
		y := top + float64(i)*step
		lines[i] = [2]Point{
			{X: cx - span/2, Y: y},
			{X: cx + span/2, Y: y},
		}
	}

	return MotorLayout{
		Scale:        s,
		StatorCenter: Point{X: cx, Y: cy},
		StatorRadius: statorRadius * s,
		RotorLength:  rotorLength * s,
		FieldLines:   lines,
		SpeedLabel:   Point{X: cx, Y: cy + statorRadius*s + 30*s},
	}
}
