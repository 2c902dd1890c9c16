// Package anim drives a widget scene at the display refresh rate: it owns
// the animation clock, samples the Parameter Model once per frame, asks the
// Scene Composer for the current layout, and issues drawing commands.
package anim

import (
	"image/color"

	"github.com/voltbench/widgets/scene"
)

// Canvas is the drawing surface handed to a Renderer each frame. Size is
// re-sampled before every frame so resizes are absorbed without an event
// handshake. Implementations live in render/; tests use recording fakes.
type Canvas interface {
	// Size returns the surface dimensions in device pixels.
	Size() (width, height float64)

	Clear(c color.Color)
	FillRect(r scene.Rect, c color.Color)
	StrokeRect(r scene.Rect, strokeWidth float64, c color.Color)
	FillCircle(center scene.Point, radius float64, c color.Color)
	StrokeCircle(center scene.Point, radius, strokeWidth float64, c color.Color)
	StrokeLine(a, b scene.Point, strokeWidth float64, c color.Color)
	StrokePolyline(pts []scene.Point, strokeWidth float64, c color.Color)
	Text(s string, at scene.Point, c color.Color)
}

// Renderer draws one widget scene. t is the animation clock in seconds and
// frame the running frame index; both only advance while the driver runs.
type Renderer interface {
	RenderFrame(cv Canvas, t float64, frame int)
}

// Scene palette shared by the renderers.
var (
	colBackground = color.RGBA{R: 16, G: 20, B: 28, A: 255}
	colGrid       = color.RGBA{R: 255, G: 255, B: 255, A: 14}
	colComponent  = color.RGBA{R: 52, G: 60, B: 76, A: 255}
	colOutline    = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	colWire       = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	colAmber      = color.RGBA{R: 251, G: 191, B: 36, A: 255}
	colNeedle     = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	colText       = color.RGBA{R: 226, G: 232, B: 240, A: 255}
	colWarning    = color.RGBA{R: 248, G: 113, B: 113, A: 255}
	colGlow       = color.RGBA{R: 249, G: 115, B: 22, A: 255}
	colFlux       = color.RGBA{R: 96, G: 165, B: 250, A: 255}
	colDial       = color.RGBA{R: 30, G: 36, B: 48, A: 255}
)

// withAlpha scales a color to the given opacity in [0,1].
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha * 255)
	return c
}

// gridSpacing is the background grid pitch in device pixels, unscaled.
const gridSpacing = 40.0

// drawGrid paints the faint background grid.
func drawGrid(cv Canvas, width, height float64) {
	for x := 0.0; x <= width; x += gridSpacing {
		cv.StrokeLine(scene.Point{X: x, Y: 0}, scene.Point{X: x, Y: height}, 1, colGrid)
	}
	for y := 0.0; y <= height; y += gridSpacing {
		cv.StrokeLine(scene.Point{X: 0, Y: y}, scene.Point{X: width, Y: y}, 1, colGrid)
	}
}
