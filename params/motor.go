package params

// Scalar ranges for the DC motor widget.
var (
	MotorFieldRange   = Range{Lo: 0.1, Hi: 2.0}  // tesla
	MotorVoltageRange = Range{Lo: 1.0, Hi: 24.0} // volts
	MotorLoopsRange   = Range{Lo: 1, Hi: 20}     // coil loops, integer
)

// MotorSpeedFactor converts field * voltage * loops into the displayed
// rotation speed.
const MotorSpeedFactor = 2.0

// Motor is the Parameter Model for the DC motor widget.
type Motor struct {
	MagneticField float64 `yaml:"MagneticField"` // tesla, 0.1 to 2
	Voltage       float64 `yaml:"Voltage"`       // volts, 1 to 24
	Loops         int     `yaml:"Loops"`         // coil loops, 1 to 20
	Running       bool    `yaml:"Running"`       // whether the rotor spins
}

// NewMotor returns a Motor model at the default teaching point.
func NewMotor() Motor {
	return Motor{
		MagneticField: 1.0,
		Voltage:       12.0,
		Loops:         5,
		Running:       true,
	}
}

// Normalize returns a copy with every scalar clamped to its range.
func (m Motor) Normalize() Motor {
	m.MagneticField = MotorFieldRange.Clamp(m.MagneticField)
	m.Voltage = MotorVoltageRange.Clamp(m.Voltage)
	m.Loops = MotorLoopsRange.ClampInt(float64(m.Loops))
	return m
}

// Speed returns the derived rotation speed. Zero while the motor is stopped.
func (m Motor) Speed() float64 {
	if !m.Running {
		return 0
	}
	return m.MagneticField * m.Voltage * float64(m.Loops) * MotorSpeedFactor
}
