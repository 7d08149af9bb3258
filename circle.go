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

import "image"

// span is the horizontal extent of a circle on one row.
type span struct {
	xMin, xMax int
}

// Circle draws a circle with the midpoint circle algorithm.
//
// If filled is set, the interior of each row touched by the outline is
// painted as well, excluding the leftmost and rightmost cell of the row.
// A radius of zero plots the centre cell only; negative radii are treated
// as their absolute value.
func Circle(g *Grid, center image.Point, radius int, c Color, filled bool) {
	radius = abs(radius)
	if radius == 0 {
		g.Set(center.X, center.Y, c)
		return
	}

	cx, cy := center.X, center.Y
	spans := make(map[int]span)
	record := func(row, xa, xb int) {
		lo, hi := min(xa, xb), max(xa, xb)
		if s, ok := spans[row]; ok {
			lo = min(lo, s.xMin)
			hi = max(hi, s.xMax)
		}
		spans[row] = span{xMin: lo, xMax: hi}
	}

	x := 0
	y := -radius
	d := -float64(radius) + 0.25
	for x <= -y {
		if d > 0 {
			y++
			d += 2 * float64(y)
		}
		d += 2*float64(x) + 1

		// eight octants
		g.Set(cx+x, cy+y, c)
		g.Set(cx-y, cy-x, c)
		g.Set(cx-y, cy+x, c)
		g.Set(cx+x, cy-y, c)
		g.Set(cx-x, cy-y, c)
		g.Set(cx+y, cy+x, c)
		g.Set(cx+y, cy-x, c)
		g.Set(cx-x, cy+y, c)

		record(cy+y, cx-x, cx+x)
		record(cy-x, cx-y, cx+y)
		record(cy+x, cx-y, cx+y)
		record(cy-y, cx-x, cx+x)

		x++
	}

	if !filled {
		return
	}
	for row, s := range spans {
		for x := s.xMin + 1; x <= s.xMax-1; x++ {
			g.Set(x, row, c)
		}
	}
}

// AACircle draws a circle like [Circle].  Anti-aliasing of circles is not
// implemented; the outline is drawn with full coverage.
func AACircle(g *Grid, center image.Point, radius int, c Color, filled bool) {
	Circle(g, center, radius, c, filled)
}
