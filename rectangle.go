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

// Rectangle draws the rectangle covering the cells [corner.X, corner.X+size.X) x
// [corner.Y, corner.Y+size.Y).
//
// The border is always drawn; if filled is set, the cells strictly inside
// the border are painted too.  Negative sizes extend the rectangle to the
// left or upwards, and a zero size is treated as one cell.
func Rectangle(g *Grid, corner, size image.Point, c Color, filled bool) {
	x, w := normalizeExtent(corner.X, size.X)
	y, h := normalizeExtent(corner.Y, size.Y)

	for dx := range w {
		g.Set(x+dx, y, c)
		g.Set(x+dx, y+h-1, c)
	}
	for dy := range h {
		g.Set(x, y+dy, c)
		g.Set(x+w-1, y+dy, c)
	}

	if !filled {
		return
	}
	for dy := 1; dy < h-1; dy++ {
		for dx := 1; dx < w-1; dx++ {
			g.Set(x+dx, y+dy, c)
		}
	}
}

// normalizeExtent returns the start and positive length of the interval
// given by a start cell and a signed length.
func normalizeExtent(start, length int) (int, int) {
	switch {
	case length < 0:
		return start + length + 1, -length
	case length == 0:
		return start, 1
	}
	return start, length
}
