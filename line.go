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

package pixelgrid

import (
	"image"

	"golang.org/x/exp/constraints"
	"seehuhn.de/go/geom/vec"
)

// Line draws a line from a to b using Bresenham's algorithm.
//
// The line is walked along its major axis in increasing order, so that
// Line(g, a, b, ...) and Line(g, b, a, ...) plot the same cells.  At each
// step width cells are plotted across the minor axis, starting width/2
// cells before the centre.  Widths below 1 are treated as 1.
func Line(g *Grid, a, b image.Point, c Color, width int) {
	width = max(width, 1)
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	if abs(x1-x0) > abs(y1-y0) {
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		dx := x1 - x0
		dy := y1 - y0
		dir := 1
		if dy < 0 {
			dir = -1
			dy = -dy
		}

		y := y0
		d := 2*dy - dx
		for i := 0; i <= dx; i++ {
			for k := range width {
				g.Set(x0+i, y+k-width/2, c)
			}
			if d >= 0 {
				d -= 2 * dx
				y += dir
			}
			d += 2 * dy
		}
		return
	}

	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0
	dir := 1
	if dx < 0 {
		dir = -1
		dx = -dx
	}

	x := x0
	d := 2*dx - dy
	for i := 0; i <= dy; i++ {
		for k := range width {
			g.Set(x+k-width/2, y0+i, c)
		}
		if d >= 0 {
			d -= 2 * dy
			x += dir
		}
		d += 2 * dx
	}
}

// AALine draws an anti-aliased line from a to b using Xiaolin Wu's
// algorithm.
//
// Coverage is expressed by scaling the alpha channel of c; cells are
// overwritten, not blended, and compositing is left to the renderer.
// Cells whose scaled alpha is zero are not written.
func AALine(g *Grid, a, b vec.Vec2, c Color) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	xMajor := abs(x1-x0) > abs(y1-y0)
	if !xMajor {
		// Walk along y by working in transposed coordinates.
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	plot := func(major, minor int, cov float64) {
		p := c.ScaleAlpha(cov)
		if p.A() == 0 {
			return
		}
		if xMajor {
			g.Set(major, minor, p)
		} else {
			g.Set(minor, major, p)
		}
	}

	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0
	m := 1.0
	if dx != 0 {
		m = dy / dx
	}

	// end points
	overlap := 1 - ((x0 + 0.5) - trunc(x0+0.5))
	dist := y0 - trunc(y0)
	plot(int(x0+0.5), int(y0), (1-dist)*overlap)

	overlap = (x1 - 0.5) - trunc(x1-0.5)
	dist = y1 - trunc(y1)
	plot(int(x1+0.5), int(y1), (1-dist)*overlap)

	// interior
	for i := 1; i < int(dx); i++ {
		x := x0 + float64(i)
		y := y0 + m*float64(i)
		ix, iy := int(x), int(y)
		dist := y - float64(iy)
		plot(ix, iy, 1-dist)
		plot(ix, iy+1, dist)
	}
}

// trunc rounds towards zero, as the int conversion does.
func trunc(x float64) float64 {
	return float64(int(x))
}

func abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
