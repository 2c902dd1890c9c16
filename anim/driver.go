package anim

// FrameSource delivers display-refresh callbacks. Request registers a single
// callback invoked once with the host wall time in seconds; the returned
// cancel revokes it. The driver never holds more than one outstanding
// registration.
type FrameSource interface {
	Request(cb func(now float64)) (cancel func(), err error)
}

// State is the lifecycle state of a Driver.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

// Driver owns the animation clock and the frame-callback registration for
// one widget. All methods run on the host event loop; there is no
// parallelism and no locking.
type Driver struct {
	source   FrameSource
	canvas   Canvas
	renderer Renderer

	state   State
	visible bool

	clock   float64 // monotonically increasing seconds, halts while paused
	lastNow float64
	hasLast bool
	frame   int

	cancel func()
}

// NewDriver returns an idle driver. Nothing is scheduled until Start.
func NewDriver(source FrameSource, canvas Canvas, renderer Renderer) *Driver {
	return &Driver{
		source:   source,
		canvas:   canvas,
		renderer: renderer,
		visible:  true,
	}
}

// Start registers the first frame callback. The driver stays idle until the
// callback fires. A registration failure leaves the driver idle.
func (d *Driver) Start() error {
	if d.cancel != nil {
		return nil // already scheduled
	}
	cancel, err := d.source.Request(d.tick)
	if err != nil {
		d.state = StateIdle
		return err
	}
	d.cancel = cancel
	return nil
}

// Stop cancels the outstanding frame callback and returns the driver to
// idle. After Stop no further frame callback is invoked.
func (d *Driver) Stop() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.state = StateIdle
	d.hasLast = false
}

// SetVisible pauses the driver while the widget is hidden and resumes it
// when it becomes visible again. The clock does not advance while paused.
func (d *Driver) SetVisible(visible bool) {
	d.visible = visible
	switch {
	case !visible && d.state == StateRunning:
		d.state = StatePaused
	case visible && d.state == StatePaused:
		d.state = StateRunning
	}
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Clock returns the animation clock in seconds.
func (d *Driver) Clock() float64 {
	return d.clock
}

// Frame returns the number of frames drawn so far.
func (d *Driver) Frame() int {
	return d.frame
}

// tick is the frame callback. It advances the clock, draws one frame and
// re-registers itself.
func (d *Driver) tick(now float64) {
	d.cancel = nil

	switch d.state {
	case StateIdle:
		if d.visible {
			d.state = StateRunning
		} else {
			d.state = StatePaused
		}
	case StateRunning:
		if !d.visible {
			d.state = StatePaused
		}
	case StatePaused:
		if d.visible {
			d.state = StateRunning
		}
	}

	if d.state == StateRunning && d.hasLast {
		if dt := now - d.lastNow; dt > 0 {
			d.clock += dt
		}
	}
	d.lastNow = now
	d.hasLast = true

	if d.state == StateRunning {
		d.renderFrame()
	}

	cancel, err := d.source.Request(d.tick)
	if err != nil {
		d.state = StateIdle
		return
	}
	d.cancel = cancel
}

// renderFrame draws one frame. Degenerate surfaces and drawing failures skip
// the frame silently; the next callback is still requested by tick.
func (d *Driver) renderFrame() {
	if d.canvas == nil || d.renderer == nil {
		return
	}
	w, h := d.canvas.Size()
	if w <= 0 || h <= 0 {
		return
	}

	defer func() {
		// A failed drawing context loses this frame, nothing else.
		_ = recover()
	}()

	d.frame++
	d.renderer.RenderFrame(d.canvas, d.clock, d.frame)
}
