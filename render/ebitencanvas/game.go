package ebitencanvas

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// chromeHeight is the host panel chrome subtracted from the viewport height.
const chromeHeight = 60

// Game adapts the ebiten loop into an anim.FrameSource: each Draw retargets
// the shared Surface at the current screen and fires the one pending frame
// callback with the wall time in seconds.
type Game struct {
	surface *Surface
	start   time.Time

	pending   func(float64)
	pendingID uint64
	seq       uint64

	// HandleInput, when set, is invoked once per Update tick with the
	// game so the caller can poll the keyboard and mutate its models.
	HandleInput func()
}

// NewGame returns a Game and the Surface scenes should draw through.
func NewGame() (*Game, *Surface) {
	g := &Game{
		surface: &Surface{},
		start:   time.Now(),
	}
	return g, g.surface
}

// Request implements anim.FrameSource. The callback fires on the next Draw.
func (g *Game) Request(cb func(now float64)) (func(), error) {
	g.seq++
	id := g.seq
	g.pending = cb
	g.pendingID = id
	cancel := func() {
		if g.pendingID == id {
			g.pending = nil
		}
	}
	return cancel, nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.HandleInput != nil {
		g.HandleInput()
	}
	return nil
}

// Draw implements ebiten.Game. It fires the pending frame callback, which
// draws the scene through the retargeted Surface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.img = screen
	if cb := g.pending; cb != nil {
		g.pending = nil
		cb(time.Since(g.start).Seconds())
	}
}

// Layout implements ebiten.Game: the drawing surface is the viewport minus
// the host chrome strip.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	h := outsideHeight - chromeHeight
	if h < 1 {
		h = 1
	}
	return outsideWidth, h
}
