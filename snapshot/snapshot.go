// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package snapshot

import (
	"candleview/stockplot"
	"candleview/stockval"
	"candleview/widgets"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"
)

// Render draws the initial viewport of bars without opening a window.
func Render(bars []stockval.Bar, theme *widgets.PlotTheme, size image.Point, loc *time.Location) *image.RGBA {
	s := NewImageSurface(size)
	r := stockplot.NewChartRenderer(theme, s)
	r.SetLocation(loc)
	r.SetBars(bars)
	return s.Image()
}

func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}
	return nil
}

// RenderFile renders bars and stores the result as png file.
func RenderFile(path string, bars []stockval.Bar, theme *widgets.PlotTheme, size image.Point, loc *time.Location) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating snapshot file: %w", err)
	}
	err = WritePNG(f, Render(bars, theme, size, loc))
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("error closing snapshot file: %w", closeErr)
	}
	return err
}
