// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package snapshot

import (
	"bytes"
	"candleview/stockplot"
	"candleview/stockval"
	"candleview/widgets"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBars = []stockval.Bar{
	{Time: 1700000000000, Open: 100, High: 110, Low: 90, Close: 105},
	{Time: 1700000060000, Open: 105, High: 108, Low: 95, Close: 97},
	{Time: 1700000120000, Open: 97, High: 120, Low: 96, Close: 118},
}

func rgba(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestClearAndFillRect(t *testing.T) {
	s := NewImageSurface(image.Pt(20, 10))
	bg := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	fg := color.NRGBA{R: 200, A: 255}
	s.Clear(bg)
	s.FillRect(stockplot.Rect{Min: f32.Pt(2, 2), Max: f32.Pt(6, 8)}, fg)
	s.Present()
	assert.Equal(t, rgba(bg), s.Image().RGBAAt(0, 0))
	assert.Equal(t, rgba(fg), s.Image().RGBAAt(4, 5))
	assert.Equal(t, rgba(bg), s.Image().RGBAAt(10, 5))
	assert.Equal(t, 1, s.Frames())
}

func TestStroke(t *testing.T) {
	s := NewImageSurface(image.Pt(20, 20))
	bg := color.NRGBA{A: 255}
	fg := color.NRGBA{G: 255, A: 255}
	s.Clear(bg)
	p := stockplot.Path{Segments: []stockplot.Segment{
		stockplot.MoveTo(f32.Pt(10, 0)),
		stockplot.LineTo(f32.Pt(10, 20)),
	}}
	s.Stroke(p, 2, fg)
	assert.Equal(t, rgba(fg), s.Image().RGBAAt(9, 10))
	assert.Equal(t, rgba(fg), s.Image().RGBAAt(10, 10))
	assert.Equal(t, rgba(bg), s.Image().RGBAAt(3, 10))
}

func TestMeasureText(t *testing.T) {
	s := NewImageSurface(image.Pt(10, 10))
	assert.Equal(t, stockplot.NewDisplayList(image.Point{}).MeasureText("100.000"), s.MeasureText("100.000"))
}

func TestRender(t *testing.T) {
	theme := widgets.NewDarkPlotTheme()
	img := Render(testBars, theme, image.Pt(400, 300), time.UTC)
	assert.Equal(t, image.Pt(400, 300), img.Bounds().Size())
	// between two grid columns above the plot area
	assert.Equal(t, rgba(theme.BackgroundColor), img.RGBAAt(395, 0))
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, RenderFile(path, testBars, widgets.NewLightPlotTheme(), image.Pt(320, 240), time.UTC))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(320, 240), img.Bounds().Size())
}
