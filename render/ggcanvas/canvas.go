// Package ggcanvas renders widget scenes into an offscreen raster image,
// with real text labels, for PNG snapshots and frame export.
package ggcanvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/voltbench/widgets/scene"
)

// fontSize is the label size in points at which the gomono face is rasterized.
const fontSize = 14

// Surface is a fixed-size raster drawing target backed by a gg context.
type Surface struct {
	ctx    *gg.Context
	width  int
	height int
}

// New returns a raster surface of the given pixel size.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggcanvas: invalid surface size %dx%d", width, height)
	}

	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: fontSize})

	ctx := gg.NewContext(width, height)
	ctx.SetFontFace(face)

	return &Surface{ctx: ctx, width: width, height: height}, nil
}

// Size returns the surface dimensions in device pixels.
func (s *Surface) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.Clear()
}

// FillRect fills an axis-aligned rectangle.
func (s *Surface) FillRect(r scene.Rect, c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.DrawRectangle(r.X, r.Y, r.W, r.H)
	s.ctx.Fill()
}

// StrokeRect outlines an axis-aligned rectangle.
func (s *Surface) StrokeRect(r scene.Rect, strokeWidth float64, c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.SetLineWidth(strokeWidth)
	s.ctx.DrawRectangle(r.X, r.Y, r.W, r.H)
	s.ctx.Stroke()
}

// FillCircle fills a disc.
func (s *Surface) FillCircle(center scene.Point, radius float64, c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.DrawCircle(center.X, center.Y, radius)
	s.ctx.Fill()
}

// StrokeCircle outlines a circle.
func (s *Surface) StrokeCircle(center scene.Point, radius, strokeWidth float64, c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.SetLineWidth(strokeWidth)
	s.ctx.DrawCircle(center.X, center.Y, radius)
	s.ctx.Stroke()
}

// StrokeLine draws a straight line segment.
func (s *Surface) StrokeLine(a, b scene.Point, strokeWidth float64, c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.SetLineWidth(strokeWidth)
	s.ctx.DrawLine(a.X, a.Y, b.X, b.Y)
	s.ctx.Stroke()
}

// StrokePolyline draws connected line segments through pts.
func (s *Surface) StrokePolyline(pts []scene.Point, strokeWidth float64, c color.Color) {
	if len(pts) < 2 {
		return
	}
	s.ctx.SetColor(c)
	s.ctx.SetLineWidth(strokeWidth)
	s.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.ctx.LineTo(p.X, p.Y)
	}
	s.ctx.Stroke()
}

// Text draws a label with its left baseline at the given point.
func (s *Surface) Text(str string, at scene.Point, c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.DrawString(str, at.X, at.Y)
}

// Image returns the rendered frame.
func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

// SavePNG writes the rendered frame to path.
func (s *Surface) SavePNG(path string) error {
	return s.ctx.SavePNG(path)
}
