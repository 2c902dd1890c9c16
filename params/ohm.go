package params

import "math"

// Scalar ranges for the Ohm's-law scene.
var (
	OhmVoltageRange    = Range{Lo: 1.0, Hi: 24.0}  // volts
	OhmCurrentRange    = Range{Lo: 0.1, Hi: 10.0}  // amperes
	OhmResistanceRange = Range{Lo: 1.0, Hi: 50.0}  // ohms
)

// HeatWarningPower is the power level above which the resistor is drawn as
// overheating.
const HeatWarningPower = 50.0

// DisplayMode selects the Ohm scene presentation. Only ModeCircuit is
// rendered; the other modes exist so preset files round-trip.
type DisplayMode string

const (
	ModeCircuit DisplayMode = "circuit"
	ModeWater   DisplayMode = "water"
	ModeGraph   DisplayMode = "graph"
)

// Ohm is the Parameter Model for the Ohm's-law scene. Voltage, Current and
// Resistance are three independent user inputs and are permitted to be
// mutually inconsistent; V=IR is displayed as a constraint, never enforced.
type Ohm struct {
	Voltage    float64     `yaml:"Voltage"`    // volts, 1 to 24
	Current    float64     `yaml:"Current"`    // amperes, 0.1 to 10
	Resistance float64     `yaml:"Resistance"` // ohms, 1 to 50
	Mode       DisplayMode `yaml:"Mode"`       // circuit, water or graph
}

// OhmDerived is recomputed from the model before each frame and never stored.
type OhmDerived struct {
	Power    float64 // watts, P = V*I
	Mismatch float64 // V - I*R, how far the inputs disagree with Ohm's law
}

// NewOhm returns an Ohm model at the default teaching point (12 V, 2 A, 6 ohm).
func NewOhm() Ohm {
	return Ohm{
		Voltage:    12.0,
		Current:    2.0,
		Resistance: 6.0,
		Mode:       ModeCircuit,
	}
}

// Normalize returns a copy with every scalar clamped to its range. Non-finite
// inputs become the range midpoint. An unknown display mode falls back to
// the circuit view.
func (o Ohm) Normalize() Ohm {
	o.Voltage = OhmVoltageRange.Clamp(o.Voltage)
	o.Current = OhmCurrentRange.Clamp(o.Current)
	o.Resistance = OhmResistanceRange.Clamp(o.Resistance)
	switch o.Mode {
	case ModeCircuit, ModeWater, ModeGraph:
	default:
		o.Mode = ModeCircuit
	}
	return o
}

// Derive computes the derived tuple for the Ohm scene. Pure: the same model
// always yields the same result.
func (o Ohm) Derive() OhmDerived {
	return OhmDerived{
		Power:    o.Voltage * o.Current,
		Mismatch: o.Voltage - o.Current*o.Resistance,
	}
}

// Overheating reports whether the heat warning should be shown.
func (d OhmDerived) Overheating() bool {
	return d.Power > HeatWarningPower
}

// GlowAlpha returns the resistor glow opacity, saturating at 1.
func (d OhmDerived) GlowAlpha() float64 {
	return math.Min(1.0, d.Power/100.0)
}
