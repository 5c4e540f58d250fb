// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package snapshot

import (
	"candleview/stockplot"
	"image"
	"image/color"
	"image/draw"
	"math"

	"gioui.org/f32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ImageSurface rasterizes frames into an RGBA image.
type ImageSurface struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	face   font.Face
	frames int
}

func NewImageSurface(size image.Point) *ImageSurface {
	return &ImageSurface{
		img:    image.NewRGBA(image.Rectangle{Max: size}),
		raster: vector.NewRasterizer(size.X, size.Y),
		face:   basicfont.Face7x13,
	}
}

func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Frames returns the number of completed frames.
func (s *ImageSurface) Frames() int {
	return s.frames
}

func (s *ImageSurface) Size() image.Point {
	return s.img.Bounds().Size()
}

func (s *ImageSurface) Clear(bg color.NRGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (s *ImageSurface) fill(c color.NRGBA) {
	s.raster.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
	size := s.Size()
	s.raster.Reset(size.X, size.Y)
}

// addLine adds the outline of a flat capped line to the rasterizer.
func (s *ImageSurface) addLine(from, to f32.Point, width float32) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	s.raster.MoveTo(from.X+nx, from.Y+ny)
	s.raster.LineTo(to.X+nx, to.Y+ny)
	s.raster.LineTo(to.X-nx, to.Y-ny)
	s.raster.LineTo(from.X-nx, from.Y-ny)
	s.raster.ClosePath()
}

func (s *ImageSurface) Stroke(p stockplot.Path, width float32, c color.NRGBA) {
	var current f32.Point
	for _, seg := range p.Segments {
		if seg.Kind == stockplot.SegmentLineTo {
			s.addLine(current, seg.Point, width)
		}
		current = seg.Point
	}
	s.fill(c)
}

func (s *ImageSurface) FillRect(r stockplot.Rect, c color.NRGBA) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	s.raster.MoveTo(r.Min.X, r.Min.Y)
	s.raster.LineTo(r.Max.X, r.Min.Y)
	s.raster.LineTo(r.Max.X, r.Max.Y)
	s.raster.LineTo(r.Min.X, r.Max.Y)
	s.raster.ClosePath()
	s.fill(c)
}

func (s *ImageSurface) FillText(str string, pos f32.Point, c color.NRGBA) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot:  fixed.P(int(math.Round(float64(pos.X))), int(math.Round(float64(pos.Y)))+s.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(str)
}

func (s *ImageSurface) MeasureText(str string) f32.Point {
	return f32.Point{
		X: float32(font.MeasureString(s.face, str)) / 64,
		Y: float32(s.face.Metrics().Height) / 64,
	}
}

func (s *ImageSurface) Present() {
	s.frames++
}

var _ stockplot.Surface = (*ImageSurface)(nil)
