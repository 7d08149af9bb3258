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
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
)

var (
	// ErrGridSize is returned when a grid is created with a non-positive
	// width or height.
	ErrGridSize = errors.New("invalid grid size")

	// ErrScreenSize is returned when the screen is too small to give
	// grid cells a positive size.
	ErrScreenSize = errors.New("invalid screen size")
)

// Grid is a fixed-size, row-major array of colour cells with (0, 0) at the
// top-left.  All writes are bounds-checked: writes outside the grid are
// silently dropped.
//
// A Grid also implements [image.Image], so that its cells can be encoded
// losslessly by any image codec.
type Grid struct {
	width, height int
	pix           []Color
}

// maxCells bounds the number of cells, so that the size of the cell
// array in bytes fits an int.
const maxCells = math.MaxInt / 4

// NewGrid allocates a grid of the given size with all cells set to zero.
// Sizes which are not positive, or whose cell array would be larger than
// an int can count in bytes, give [ErrGridSize].
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > maxCells/height {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrGridSize)
	}
	Logger().Debug("grid created", "width", width, "height", height)
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Inside reports whether (x, y) addresses a cell of the grid.
func (g *Grid) Inside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the colour stored at (x, y).
// Coordinates outside the grid read as the zero colour.
func (g *Grid) Get(x, y int) Color {
	if !g.Inside(x, y) {
		return 0
	}
	return g.pix[y*g.width+x]
}

// Set stores c at (x, y).  Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, c Color) {
	if !g.Inside(x, y) {
		return
	}
	g.pix[y*g.width+x] = c
}

// Reset sets every cell to zero.
func (g *Grid) Reset() {
	clear(g.pix)
}

// Plotted returns the number of non-zero cells.
func (g *Grid) Plotted() int {
	n := 0
	for _, c := range g.pix {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		pix:    slices.Clone(g.pix),
	}
}

// Equal reports whether g and h have the same size and cell values.
func (g *Grid) Equal(h *Grid) bool {
	return g.width == h.width && g.height == h.height && slices.Equal(g.pix, h.pix)
}

// ColorModel implements the [image.Image] interface.
func (g *Grid) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements the [image.Image] interface.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// At implements the [image.Image] interface.
func (g *Grid) At(x, y int) color.Color {
	return g.Get(x, y)
}
