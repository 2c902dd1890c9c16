// Package widgets assembles the interactive teaching widgets: each widget
// instance owns a Parameter Model, an animation driver, and the identity
// used by the host page. The drawing surface and frame-callback source are
// supplied by the caller.
package widgets

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/voltbench/widgets/anim"
	"github.com/voltbench/widgets/params"
)

// Widget is the host-facing surface of one widget instance.
type Widget interface {
	ID() uuid.UUID
	Kind() string
	Start() error
	Stop()
	SetVisible(visible bool)
}

// OhmWidget is the Ohm's-law playground.
type OhmWidget struct {
	id     uuid.UUID
	model  params.Ohm
	driver *anim.Driver
}

// NewOhmWidget returns an Ohm widget drawing through canvas, paced by source.
func NewOhmWidget(source anim.FrameSource, canvas anim.Canvas) *OhmWidget {
	w := &OhmWidget{
		id:    uuid.New(),
		model: params.NewOhm(),
	}
	w.driver = anim.NewDriver(source, canvas, anim.NewOhmRenderer(w.Params))
	return w
}

func (w *OhmWidget) ID() uuid.UUID { return w.id }

func (w *OhmWidget) Kind() string { return "ohm" }

// Params returns the current parameter record.
func (w *OhmWidget) Params() params.Ohm { return w.model }

// Update replaces the whole parameter record, clamping every scalar.
func (w *OhmWidget) Update(next params.Ohm) {
	w.model = next.Normalize()
}

// SetScalar replaces one named scalar through a whole-record update, the
// shape of a control-panel parameter-change event.
func (w *OhmWidget) SetScalar(name string, value float64) error {
	next := w.model
	switch name {
	case "voltage":
		next.Voltage = value
	case "current":
		next.Current = value
	case "resistance":
		next.Resistance = value
	default:
		return fmt.Errorf("widgets: unknown ohm scalar %q", name)
	}
	w.Update(next)
	return nil
}

func (w *OhmWidget) Start() error            { return w.driver.Start() }
func (w *OhmWidget) Stop()                   { w.driver.Stop() }
func (w *OhmWidget) SetVisible(visible bool) { w.driver.SetVisible(visible) }

// Driver exposes the animation driver for lifecycle inspection.
func (w *OhmWidget) Driver() *anim.Driver { return w.driver }

// TransformerWidget is the transformer playground, in either scene variant.
type TransformerWidget struct {
	id      uuid.UUID
	variant anim.TransformerVariant
	model   params.Transformer
	driver  *anim.Driver
}

// NewTransformerWidget returns a transformer widget for the given variant.
func NewTransformerWidget(source anim.FrameSource, canvas anim.Canvas, variant anim.TransformerVariant) *TransformerWidget {
	w := &TransformerWidget{
		id:      uuid.New(),
		variant: variant,
		model:   params.NewTransformer(),
	}
	w.driver = anim.NewDriver(source, canvas, anim.NewTransformerRenderer(w.Params, variant))
	return w
}

func (w *TransformerWidget) ID() uuid.UUID { return w.id }

func (w *TransformerWidget) Kind() string {
	if w.variant == anim.VariantWindings {
		return "transformer-windings"
	}
	return "transformer"
}

// Params returns the current parameter record.
func (w *TransformerWidget) Params() params.Transformer { return w.model }

// Update replaces the whole parameter record, clamping every scalar.
func (w *TransformerWidget) Update(next params.Transformer) {
	w.model = next.Normalize()
}

// SetScalar replaces one named scalar through a whole-record update.
func (w *TransformerWidget) SetScalar(name string, value float64) error {
	next := w.model
	switch name {
	case "primaryVoltage":
		next.PrimaryVoltage = value
	case "primaryCurrent":
		next.PrimaryCurrent = value
	case "turnsRatio":
		next.TurnsRatio = value
	case "efficiency":
		next.EfficiencyPct = params.TransformerEfficiencyRange.ClampInt(value)
	default:
		return fmt.Errorf("widgets: unknown transformer scalar %q", name)
	}
	w.Update(next)
	return nil
}

// SetConnected toggles the flux animation.
func (w *TransformerWidget) SetConnected(connected bool) {
	next := w.model
	next.Connected = connected
	w.Update(next)
}

func (w *TransformerWidget) Start() error            { return w.driver.Start() }
func (w *TransformerWidget) Stop()                   { w.driver.Stop() }
func (w *TransformerWidget) SetVisible(visible bool) { w.driver.SetVisible(visible) }

// Driver exposes the animation driver for lifecycle inspection.
func (w *TransformerWidget) Driver() *anim.Driver { return w.driver }

// MotorWidget is the DC motor visualization. Every parameter change posts an
// update-motor-params message to the bus, fire-and-forget.
type MotorWidget struct {
	id     uuid.UUID
	model  params.Motor
	driver *anim.Driver
	bus    chan MotorMessage
}

// NewMotorWidget returns a motor widget. bus may be nil, in which case no
// messages are posted.
func NewMotorWidget(source anim.FrameSource, canvas anim.Canvas, bus chan MotorMessage) *MotorWidget {
	w := &MotorWidget{
		id:    uuid.New(),
		model: params.NewMotor(),
		bus:   bus,
	}
	w.driver = anim.NewDriver(source, canvas, anim.NewMotorRenderer(w.Params))
	return w
}

func (w *MotorWidget) ID() uuid.UUID { return w.id }

func (w *MotorWidget) Kind() string { return "motor" }

// Params returns the current parameter record.
func (w *MotorWidget) Params() params.Motor { return w.model }

// Update replaces the whole parameter record and posts the update message.
func (w *MotorWidget) Update(next params.Motor) {
	w.model = next.Normalize()
	if w.bus != nil {
		PostLatest(w.bus, NewMotorMessage(w.id, w.model))
	}
}

// SetScalar replaces one named scalar through a whole-record update.
func (w *MotorWidget) SetScalar(name string, value float64) error {
	next := w.model
	switch name {
	case "magneticField":
		next.MagneticField = value
	case "voltage":
		next.Voltage = value
	case "loops":
		next.Loops = params.MotorLoopsRange.ClampInt(value)
	default:
		return fmt.Errorf("widgets: unknown motor scalar %q", name)
	}
	w.Update(next)
	return nil
}

// SetRunning starts or stops the rotor.
func (w *MotorWidget) SetRunning(running bool) {
	next := w.model
	next.Running = running
	w.Update(next)
}

func (w *MotorWidget) Start() error            { return w.driver.Start() }
func (w *MotorWidget) Stop()                   { w.driver.Stop() }
func (w *MotorWidget) SetVisible(visible bool) { w.driver.SetVisible(visible) }

// Driver exposes the animation driver for lifecycle inspection.
func (w *MotorWidget) Driver() *anim.Driver { return w.driver }
