package anim

import (
	"fmt"
	"math"

	"github.com/voltbench/widgets/params"
	"github.com/voltbench/widgets/scene"
)

// fluxPhaseStep is the flux phase advance per frame, in radians. The flux
// animation is frame-indexed, not time-indexed, matching the observable
// behavior of the original widget.
const fluxPhaseStep = 0.08

// FluxAlpha returns the opacity of flux band i on the given frame.
func FluxAlpha(frame, band int) float64 {
	phi := fluxPhaseStep * float64(frame)
	return 0.4 + 0.6*math.Sin(phi+float64(band)*0.4)
}

// TransformerVariant selects which transformer scene is drawn.
type TransformerVariant int

const (
	// VariantFlux shows the animated core with flux bands and both meters.
	VariantFlux TransformerVariant = iota
	// VariantWindings shows the coil stacks with turn-count labels and no
	// flux animation.
	VariantWindings
)

// TransformerRenderer draws a transformer scene. Snapshot is read once per
// frame.
type TransformerRenderer struct {
	Snapshot func() params.Transformer
	Variant  TransformerVariant
}

// NewTransformerRenderer returns a renderer for the given variant.
func NewTransformerRenderer(snapshot func() params.Transformer, variant TransformerVariant) *TransformerRenderer {
	return &TransformerRenderer{
		Snapshot: snapshot,
		Variant:  variant,
	}
}

// RenderFrame draws one frame of the transformer scene.
func (r *TransformerRenderer) RenderFrame(cv Canvas, t float64, frame int) {
	model := r.Snapshot()
	derived := model.Derive()
	w, h := cv.Size()
	layout := scene.ComposeTransformer(w, h, model.TurnsRatio)

	cv.Clear(colBackground)
	drawGrid(cv, w, h)

	// Core fill and stroke.
	cv.FillRect(layout.CoreRect, colComponent)
	cv.StrokeRect(layout.CoreRect, 2, colOutline)

	// Windings: primary stack on the left, secondary on the right. At very
	// high turn ratios the stacks are emitted as-is, overlaps included.
	for _, c := range layout.PrimaryCoils {
		cv.StrokeCircle(c, layout.CoilRadius, 2, colAmber)
	}
	for _, c := range layout.SecondaryCoils {
		cv.StrokeCircle(c, layout.CoilRadius, 2, colFlux)
	}

	// Leads from the winding stacks to the meters.
	if len(layout.PrimaryCoils) > 0 {
		cv.StrokeLine(layout.PrimaryCoils[0], layout.PrimaryMeterCenter, 2, colWire)
	}
	if len(layout.SecondaryCoils) > 0 {
		cv.StrokeLine(layout.SecondaryCoils[0], layout.SecondaryMeterCenter, 2, colWire)
	}

	drawMeter(cv, layout.PrimaryMeterCenter, layout.MeterRadius)
	if r.Variant == VariantFlux {
		drawMeter(cv, layout.SecondaryMeterCenter, layout.MeterRadius)
	}

	// Text labels.
	p, q := scene.WindingCounts(model.TurnsRatio)
	cv.Text(fmt.Sprintf("V1 = %.0f V  I1 = %.1f A", model.PrimaryVoltage, model.PrimaryCurrent),
		layout.PrimaryLabel, colText)
	switch r.Variant {
	case VariantFlux:
		cv.Text(fmt.Sprintf("V2 = %.2f V  I2 = %.2f A", derived.SecondaryVoltage, derived.SecondaryCurrent),
			layout.SecondaryLabel, colText)
	case VariantWindings:
		cv.Text(fmt.Sprintf("N1:N2 = %.1f  (%d : %d coils)", model.TurnsRatio, p, q),
			layout.SecondaryLabel, colText)
	}
	cv.Text(fmt.Sprintf("eff = %d%%", model.EfficiencyPct),
		scene.Point{X: 20, Y: 30}, colText)

	// Animated overlays.
	if r.Variant == VariantFlux && model.Connected {
		for i, band := range layout.FluxBands {
			cv.FillRect(band, withAlpha(colFlux, FluxAlpha(frame, i)))
		}
	}

	// The primary-side needle always reflects I1. The secondary needle is
	// driven by I2 and rests at zero while the derivation is undefined.
	drawNeedle(cv, layout.PrimaryMeterCenter, layout.MeterRadius, model.PrimaryCurrent)
	if r.Variant == VariantFlux {
		drawNeedle(cv, layout.SecondaryMeterCenter, layout.MeterRadius, derived.SecondaryCurrent)
	}
}
