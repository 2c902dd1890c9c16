package params

// Scalar ranges for the transformer scene.
var (
	TransformerPrimaryVoltageRange = Range{Lo: 100.0, Hi: 480.0} // volts
	TransformerPrimaryCurrentRange = Range{Lo: 0.1, Hi: 5.0}     // amperes
	TransformerTurnsRatioRange     = Range{Lo: 1.0, Hi: 50.0}    // N1/N2
	TransformerEfficiencyRange     = Range{Lo: 70, Hi: 99}       // percent, integer
)

// Transformer is the Parameter Model for both transformer scene variants.
type Transformer struct {
	PrimaryVoltage float64 `yaml:"PrimaryVoltage"` // volts, 100 to 480
	PrimaryCurrent float64 `yaml:"PrimaryCurrent"` // amperes, 0.1 to 5
	TurnsRatio     float64 `yaml:"TurnsRatio"`     // k = N1/N2, 1 to 50
	EfficiencyPct  int     `yaml:"EfficiencyPct"`  // percent, 70 to 99
	Connected      bool    `yaml:"Connected"`      // whether flux lines animate
}

// TransformerDerived holds the secondary-side quantities. SecondaryCurrent is
// defined only while SecondaryVoltage > 0; otherwise it is zero and the meter
// needle stays pegged at rest.
type TransformerDerived struct {
	SecondaryVoltage float64 // volts, V2 = (V1/k)*(eta/100)
	SecondaryCurrent float64 // amperes, I2 = (V1*I1*eta/100)/V2
}

// NewTransformer returns a Transformer model at a 240 V distribution example.
func NewTransformer() Transformer {
	return Transformer{
		PrimaryVoltage: 240.0,
		PrimaryCurrent: 0.5,
		TurnsRatio:     20.0,
		EfficiencyPct:  95,
		Connected:      true,
	}
}

// Normalize returns a copy with every scalar clamped to its range.
func (tr Transformer) Normalize() Transformer {
	tr.PrimaryVoltage = TransformerPrimaryVoltageRange.Clamp(tr.PrimaryVoltage)
	tr.PrimaryCurrent = TransformerPrimaryCurrentRange.Clamp(tr.PrimaryCurrent)
	tr.TurnsRatio = TransformerTurnsRatioRange.Clamp(tr.TurnsRatio)
	tr.EfficiencyPct = TransformerEfficiencyRange.ClampInt(float64(tr.EfficiencyPct))
	return tr
}

// Derive computes the secondary-side tuple. Denominators below Epsilon are
// replaced by Epsilon. Pure: the same model always yields the same result.
func (tr Transformer) Derive() TransformerDerived {
	eta := float64(tr.EfficiencyPct) / 100.0
	v2 := tr.PrimaryVoltage / guardDenominator(tr.TurnsRatio) * eta

	var i2 float64
	if v2 > 0 {
		i2 = tr.PrimaryVoltage * tr.PrimaryCurrent * eta / guardDenominator(v2)
	}

	return TransformerDerived{
		SecondaryVoltage: v2,
		SecondaryCurrent: i2,
	}
}
