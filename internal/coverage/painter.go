// seehuhn.de/go/pixelgrid - a pixel grid drawing surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package coverage

import (
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
)

// Painter composites coverage rows onto an image in a solid colour, using
// the source-over operator.  Its Emit method can be passed directly to
// [Rasterizer.Fill] and [Rasterizer.StrokeLine].
type Painter struct {
	dst  draw.Image
	src  *image.Uniform
	mask *image.Alpha
}

// NewPainter returns a Painter which draws onto dst in opaque black.
func NewPainter(dst draw.Image) *Painter {
	return &Painter{
		dst:  dst,
		src:  image.NewUniform(color.Black),
		mask: &image.Alpha{},
	}
}

// SetColor sets the colour used for subsequent rows.
func (p *Painter) SetColor(c color.Color) {
	p.src.C = c
}

// Emit composites one row of coverage values starting at (xMin, y).
func (p *Painter) Emit(y, xMin int, coverage []float32) {
	n := len(coverage)
	p.mask.Pix = slices.Grow(p.mask.Pix[:0], n)[:n]
	for i, c := range coverage {
		p.mask.Pix[i] = byte(max(0, min(255, int(c*256))))
	}
	p.mask.Stride = n
	p.mask.Rect = image.Rect(xMin, y, xMin+n, y+1)

	draw.DrawMask(p.dst, p.mask.Rect, p.src, image.Point{}, p.mask, p.mask.Rect.Min, draw.Over)
}
