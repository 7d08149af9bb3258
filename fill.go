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

// FloodFill paints the 4-connected region of cells around seed which have
// the same colour as seed, and returns the number of cells painted.
//
// The fill uses an explicit stack, so its memory use is bounded by the
// grid area.  A seed outside the grid, or a fill colour equal to the
// seed colour, leaves the grid unchanged.
func FloodFill(g *Grid, seed image.Point, c Color) int {
	if !g.Inside(seed.X, seed.Y) {
		return 0
	}
	base := g.Get(seed.X, seed.Y)
	if base == c {
		return 0
	}

	painted := 0
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Painted cells no longer match base, so revisits are dropped here.
		if !g.Inside(p.X, p.Y) || g.Get(p.X, p.Y) != base {
			continue
		}
		g.Set(p.X, p.Y, c)
		painted++
		stack = append(stack,
			image.Point{X: p.X, Y: p.Y - 1},
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X - 1, Y: p.Y})
	}

	Logger().Debug("flood fill", "seed", seed, "color", c, "painted", painted)
	return painted
}
