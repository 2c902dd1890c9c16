// Package ebitencanvas renders widget scenes onto an ebiten screen and
// adapts the ebiten game loop into the driver's frame-callback source.
package ebitencanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/voltbench/widgets/scene"
)

// Surface draws onto the current frame's ebiten screen. The target image is
// retargeted by the Game on every Draw; before the first frame it is nil and
// Size reports a zero surface, which skips the frame.
type Surface struct {
	img *ebiten.Image
}

// Size returns the screen dimensions in device pixels.
func (s *Surface) Size() (float64, float64) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the screen with c.
func (s *Surface) Clear(c color.Color) {
	s.img.Fill(c)
}

// FillRect fills an axis-aligned rectangle.
func (s *Surface) FillRect(r scene.Rect, c color.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

// StrokeRect outlines an axis-aligned rectangle.
func (s *Surface) StrokeRect(r scene.Rect, strokeWidth float64, c color.Color) {
	vector.StrokeRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(strokeWidth), c, true)
}

// FillCircle fills a disc.
func (s *Surface) FillCircle(center scene.Point, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// StrokeCircle outlines a circle.
func (s *Surface) StrokeCircle(center scene.Point, radius, strokeWidth float64, c color.Color) {
	vector.StrokeCircle(s.img, float32(center.X), float32(center.Y), float32(radius), float32(strokeWidth), c, true)
}

// StrokeLine draws a straight line segment.
func (s *Surface) StrokeLine(a, b scene.Point, strokeWidth float64, c color.Color) {
	vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(strokeWidth), c, true)
}

// StrokePolyline draws connected line segments through pts.
func (s *Surface) StrokePolyline(pts []scene.Point, strokeWidth float64, c color.Color) {
	for i := 1; i < len(pts); i++ {
		s.StrokeLine(pts[i-1], pts[i], strokeWidth, c)
	}
}

// Text draws a small debug-font label at a baseline-ish position.
func (s *Surface) Text(str string, at scene.Point, c color.Color) {
	// The debug font ignores color; good enough for the interactive view.
	ebitenutil.DebugPrintAt(s.img, str, int(at.X), int(at.Y))
}
