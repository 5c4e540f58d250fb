// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"image"
	"image/color"
	"unicode/utf8"

	"gioui.org/f32"
)

type CommandKind int

const (
	CommandClear CommandKind = iota
	CommandStroke
	CommandFillRect
	CommandFillText
	CommandPresent
)

type Command struct {
	Kind  CommandKind
	Path  Path
	Rect  Rect
	Text  string
	Pos   f32.Point
	Width float32
	Color color.NRGBA
}

// DisplayList is a Surface which records the commands of the last frame.
// Text is measured using a fixed glyph size.
type DisplayList struct {
	size      image.Point
	glyphSize f32.Point
	commands  []Command
	frames    int
}

// Glyph size of golang.org/x/image/font/basicfont.Face7x13.
var DefaultGlyphSize = f32.Point{X: 7, Y: 13}

func NewDisplayList(size image.Point) *DisplayList {
	return &DisplayList{
		size:      size,
		glyphSize: DefaultGlyphSize,
	}
}

func (d *DisplayList) Resize(size image.Point) {
	d.size = size
}

func (d *DisplayList) Size() image.Point {
	return d.size
}

func (d *DisplayList) Clear(bg color.NRGBA) {
	d.commands = d.commands[:0]
	d.frames++
	d.commands = append(d.commands, Command{Kind: CommandClear, Color: bg})
}

func (d *DisplayList) Stroke(p Path, width float32, c color.NRGBA) {
	// Segment buffers of the caller are reused, copy them.
	segments := make([]Segment, len(p.Segments))
	copy(segments, p.Segments)
	d.commands = append(d.commands, Command{Kind: CommandStroke, Path: Path{Segments: segments}, Width: width, Color: c})
}

func (d *DisplayList) FillRect(r Rect, c color.NRGBA) {
	d.commands = append(d.commands, Command{Kind: CommandFillRect, Rect: r, Color: c})
}

func (d *DisplayList) FillText(s string, pos f32.Point, c color.NRGBA) {
	d.commands = append(d.commands, Command{Kind: CommandFillText, Text: s, Pos: pos, Color: c})
}

func (d *DisplayList) MeasureText(s string) f32.Point {
	return f32.Point{X: d.glyphSize.X * float32(utf8.RuneCountInString(s)), Y: d.glyphSize.Y}
}

func (d *DisplayList) Present() {
	d.commands = append(d.commands, Command{Kind: CommandPresent})
}

// Frames returns the number of frames started since creation.
func (d *DisplayList) Frames() int {
	return d.frames
}

func (d *DisplayList) Commands() []Command {
	return d.commands
}

// Filter returns the recorded commands of the given kind.
func (d *DisplayList) Filter(kind CommandKind) []Command {
	var result []Command
	for _, c := range d.commands {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	return result
}
