package anim

import (
	"fmt"
	"math"

	"github.com/voltbench/widgets/params"
	"github.com/voltbench/widgets/scene"
	"github.com/voltbench/widgets/waveform"
)

// mismatchThreshold is how far V may drift from I*R before the scene points
// out the disagreement.
const mismatchThreshold = 0.5

// OhmRenderer draws the Ohm's-law circuit scene. Snapshot is read once per
// frame so the whole frame sees one consistent parameter record.
type OhmRenderer struct {
	Snapshot func() params.Ohm

	glowPulse waveform.PulseFunction
}

// NewOhmRenderer returns a renderer reading the model through snapshot.
func NewOhmRenderer(snapshot func() params.Ohm) *OhmRenderer {
	pulse, _ := waveform.FromName("breathe")
	return &OhmRenderer{
		Snapshot:  snapshot,
		glowPulse: pulse,
	}
}

// RenderFrame draws one frame of the circuit view.
func (r *OhmRenderer) RenderFrame(cv Canvas, t float64, frame int) {
	model := r.Snapshot()
	derived := model.Derive()
	w, h := cv.Size()
	layout := scene.ComposeOhm(w, h)

	cv.Clear(colBackground)
	drawGrid(cv, w, h)

	// Resistor glow sits behind the component bodies. Its opacity follows
	// the dissipated power and saturates at 1; below saturation it breathes.
	glow := derived.GlowAlpha()
	if glow < 1 {
		glow *= 0.7 + r.glowPulse(t, 0.3, 2.0)
	}
	glowRect := layout.ResistorRect
	pad := 10 * layout.Scale
	glowRect.X -= pad
	glowRect.Y -= pad
	glowRect.W += 2 * pad
	glowRect.H += 2 * pad
	cv.FillRect(glowRect, withAlpha(colGlow, glow*0.5))

	// Component fills.
	cv.FillRect(layout.BatteryRect, colComponent)

	// Component strokes.
	cv.StrokeRect(layout.BatteryRect, 2, colOutline)
	cv.FillCircle(layout.BatteryTerminalTop, 4*layout.Scale, colOutline)
	cv.FillCircle(layout.BatteryTerminalBottom, 4*layout.Scale, colOutline)
	cv.StrokePolyline(layout.ResistorZigzag, 2, colOutline)

	// Wires, closing the loop back to the positive terminal.
	wire := append(append([]scene.Point{}, layout.WirePath...), layout.WirePath[0])
	cv.StrokePolyline(wire, 2, colWire)

	// Meter dial.
	drawMeter(cv, layout.MeterCenter, layout.MeterRadius)

	// Text labels.
	labelX := 20.0
	cv.Text(fmt.Sprintf("V = %.1f V", model.Voltage), scene.Point{X: labelX, Y: 30}, colText)
	cv.Text(fmt.Sprintf("I = %.1f A", model.Current), scene.Point{X: labelX, Y: 50}, colText)
	cv.Text(fmt.Sprintf("R = %.1f Ohm", model.Resistance), scene.Point{X: labelX, Y: 70}, colText)
	cv.Text(fmt.Sprintf("P = %.1f W", derived.Power), scene.Point{X: labelX, Y: 90}, colText)
	if math.Abs(derived.Mismatch) > mismatchThreshold {
		note := fmt.Sprintf("V and I*R disagree: %.1f V vs %.1f V",
			model.Voltage, model.Current*model.Resistance)
		cv.Text(note, scene.Point{X: labelX, Y: 110}, colWarning)
	}

	// Animated overlays.
	drawParticles(cv, layout.WirePath, t, model.Current)
	drawNeedle(cv, layout.NeedlePivot, layout.MeterRadius, model.Current)
	if derived.Overheating() {
		at := scene.Point{
			X: layout.ResistorRect.X,
			Y: layout.ResistorRect.Y - 20*layout.Scale,
		}
		cv.Text("OVERHEATING", at, colWarning)
	}
}
