package anim

import (
	"fmt"
	"math"

	"github.com/voltbench/widgets/params"
	"github.com/voltbench/widgets/scene"
)

// MotorRenderer draws the DC motor scene: stator ring, field lines and a
// rotor bar whose angle integrates the derived speed. The rotor holds its
// position while the motor is stopped.
type MotorRenderer struct {
	Snapshot func() params.Motor

	angle float64
	lastT float64
	hasT  bool
}

// NewMotorRenderer returns a renderer reading the model through snapshot.
func NewMotorRenderer(snapshot func() params.Motor) *MotorRenderer {
	return &MotorRenderer{Snapshot: snapshot}
}

// RenderFrame draws one frame of the motor scene.
func (r *MotorRenderer) RenderFrame(cv Canvas, t float64, frame int) {
	model := r.Snapshot()
	speed := model.Speed()

	if r.hasT {
		if dt := t - r.lastT; dt > 0 {
			r.angle = math.Mod(r.angle+dt*speed*0.1, 2*math.Pi)
		}
	}
	r.lastT = t
	r.hasT = true

	w, h := cv.Size()
	layout := scene.ComposeMotor(w, h)

	cv.Clear(colBackground)
	drawGrid(cv, w, h)

	for _, line := range layout.FieldLines {
		cv.StrokeLine(line[0], line[1], 1, withAlpha(colFlux, 0.4))
	}

	cv.FillCircle(layout.StatorCenter, layout.StatorRadius, colDial)
	cv.StrokeCircle(layout.StatorCenter, layout.StatorRadius, 3, colOutline)

	tip := scene.Point{
		X: layout.StatorCenter.X + math.Cos(r.angle)*layout.RotorLength,
		Y: layout.StatorCenter.Y + math.Sin(r.angle)*layout.RotorLength,
	}
	tail := scene.Point{
		X: layout.StatorCenter.X - math.Cos(r.angle)*layout.RotorLength,
		Y: layout.StatorCenter.Y - math.Sin(r.angle)*layout.RotorLength,
	}
	cv.StrokeLine(tail, tip, 4, colAmber)
	cv.FillCircle(layout.StatorCenter, 6*layout.Scale, colOutline)

	cv.Text(fmt.Sprintf("speed = %.0f", speed), layout.SpeedLabel, colText)
	if !model.Running {
		cv.Text("STOPPED", scene.Point{X: 20, Y: 30}, colWarning)
	}
}
