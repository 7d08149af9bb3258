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
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Zoom limits and the step used by interactive zoom controls.
const (
	ZoomMin  = 0.5
	ZoomMax  = 10.0
	ZoomStep = 0.5
)

// Anchor selects a point within a cell for [Camera.GridToScreen].
//
// Single-letter anchors centre the point along one axis ("n" is the middle
// of the top edge), two-letter anchors name a corner ("se" is the
// bottom-right corner), and "c" is the centre of the cell.
type Anchor string

const (
	AnchorNW Anchor = "nw"
	AnchorN  Anchor = "n"
	AnchorNE Anchor = "ne"
	AnchorW  Anchor = "w"
	AnchorC  Anchor = "c"
	AnchorE  Anchor = "e"
	AnchorSW Anchor = "sw"
	AnchorS  Anchor = "s"
	AnchorSE Anchor = "se"
)

// offset returns the position of the anchor point relative to the top-left
// corner of a cell, in cells.
func (a Anchor) offset() (dx, dy float64) {
	switch a {
	case AnchorN, AnchorS:
		return 0.5, 0
	case AnchorE, AnchorW:
		return 0, 0.5
	case AnchorC:
		return 0.5, 0.5
	case AnchorNE:
		return 1, 0
	case AnchorSW:
		return 0, 1
	case AnchorSE:
		return 1, 1
	}
	return 0, 0
}

// Camera maps between grid cells and screen pixels under pan and zoom.
//
// At zoom 1 and zero offset the whole grid fits the screen: the cell size
// is chosen so that neither grid dimension overflows.
type Camera struct {
	zoom     float64
	offset   image.Point
	cellSize float64
	screen   image.Point

	gridWidth, gridHeight int
}

// NewCamera returns a camera for the grid g shown on a screen of the given
// size, at zoom 1 and without pan.
func NewCamera(g *Grid, screen image.Point) (*Camera, error) {
	if screen.X <= 0 || screen.Y <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", screen.X, screen.Y, ErrScreenSize)
	}
	cellSize := min(
		float64(screen.X)/float64(g.width),
		float64(screen.Y)/float64(g.height))
	if !(cellSize > 0) {
		return nil, fmt.Errorf("%dx%d for a %dx%d grid: %w",
			screen.X, screen.Y, g.width, g.height, ErrScreenSize)
	}
	return &Camera{
		zoom:       1,
		cellSize:   cellSize,
		screen:     screen,
		gridWidth:  g.width,
		gridHeight: g.height,
	}, nil
}

func (c *Camera) Zoom() float64       { return c.zoom }
func (c *Camera) Offset() image.Point { return c.offset }

// Screen returns the screen size the camera was created for.
func (c *Camera) Screen() image.Point { return c.screen }

// CellSize returns the edge length of a cell in pixels at zoom 1.
func (c *Camera) CellSize() float64 { return c.cellSize }

// Scale returns the edge length of a cell in pixels at the current zoom.
func (c *Camera) Scale() float64 { return c.cellSize * c.zoom }

// AdjustZoom adds delta to the zoom factor.  Changes which would leave
// [ZoomMin, ZoomMax] are ignored.
func (c *Camera) AdjustZoom(delta float64) {
	z := c.zoom + delta
	if z < ZoomMin || z > ZoomMax {
		Logger().Debug("zoom change rejected", "zoom", c.zoom, "delta", delta)
		return
	}
	c.zoom = z
}

// Pan moves the grid by d screen pixels.
func (c *Camera) Pan(d image.Point) {
	c.offset = c.offset.Add(d)
}

func (c *Camera) PanHorizontal(dx int) { c.offset.X += dx }
func (c *Camera) PanVertical(dy int)   { c.offset.Y += dy }

// PanCells moves the grid by one cell, at the current zoom, along the sign
// of each component of dir.
func (c *Camera) PanCells(dir image.Point) {
	step := c.Scale()
	c.Pan(image.Point{
		X: int(step * float64(sign(dir.X))),
		Y: int(step * float64(sign(dir.Y))),
	})
}

// Recenter restores zoom 1 and removes any pan.
func (c *Camera) Recenter() {
	c.zoom = 1
	c.offset = image.Point{}
}

// ScreenToGrid returns the cell which contains the screen pixel p.
// The grid surface is placed at the screen origin, shifted by the pan
// offset.  Pixels outside the grid give coordinates outside the grid.
func (c *Camera) ScreenToGrid(p image.Point) image.Point {
	s := c.Scale()
	x := float64(p.X - c.offset.X)
	y := float64(p.Y - c.offset.Y)
	return image.Point{
		X: int(math.Floor(x / s)),
		Y: int(math.Floor(y / s)),
	}
}

// GridToScreen returns the screen pixel of the anchor point of a cell.
// Coordinates are truncated towards zero.
func (c *Camera) GridToScreen(cell image.Point, anchor Anchor) image.Point {
	dx, dy := anchor.offset()
	s := c.Scale()
	return image.Point{
		X: int((float64(cell.X)+dx)*s + float64(c.offset.X)),
		Y: int((float64(cell.Y)+dy)*s + float64(c.offset.Y)),
	}
}

// Matrix returns the affine map from grid space to screen space, in the
// form used by the geom package.
func (c *Camera) Matrix() matrix.Matrix {
	s := c.Scale()
	return matrix.Matrix{
		s, 0,
		0, s,
		float64(c.offset.X), float64(c.offset.Y),
	}
}

// Bounds returns the screen-space rectangle covered by the grid.
// LLx/LLy hold the top-left corner and URx/URy the bottom-right corner.
func (c *Camera) Bounds() rect.Rect {
	m := c.Matrix()
	return rect.Rect{
		LLx: m[4],
		LLy: m[5],
		URx: float64(c.gridWidth)*m[0] + m[4],
		URy: float64(c.gridHeight)*m[3] + m[5],
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
