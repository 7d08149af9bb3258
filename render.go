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
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pixelgrid/internal/coverage"
)

// GridLineThreshold is the zoomed cell size, in pixels, at or below which
// the separator lines between cells are not drawn.
const GridLineThreshold = 5.0

// Renderer draws a grid onto a screen image.  It never modifies the grid
// or the camera.  The internal buffers of a Renderer are reused between
// frames.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	raster *coverage.Rasterizer
}

// NewRenderer returns a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		raster: coverage.NewRasterizer(rect.Rect{}),
	}
}

// Render draws one frame: the background, every cell with non-zero alpha,
// the border around the grid and, if showGrid is set and cells are large
// enough, the separator lines between rows and columns.
//
// Cells are composited over the background using their alpha channel.
// Border and separator lines use a colour between "fg_secondary" and
// "fg_primary" from pal; the further the camera is zoomed in, the closer
// the colour is to "fg_primary".
func (r *Renderer) Render(screen draw.Image, g *Grid, cam *Camera, pal Palette, showGrid bool) {
	bounds := screen.Bounds()
	if bg := pal.Lookup("bg_primary"); bg.A() != 0 {
		draw.Draw(screen, bounds, image.NewUniform(bg), image.Point{}, draw.Src)
	}

	m := cam.Matrix()
	cells := r.drawCells(screen, g, m)

	r.raster.Reset(rect.Rect{
		LLx: float64(bounds.Min.X),
		LLy: float64(bounds.Min.Y),
		URx: float64(bounds.Max.X),
		URy: float64(bounds.Max.Y),
	})
	r.raster.Cap = graphics.LineCapSquare
	painter := coverage.NewPainter(screen)
	painter.SetColor(pal.Lookup("fg_secondary").Blend(pal.Lookup("fg_primary"), min(cam.Zoom()/ZoomMax, 1)))

	// stroke draws a one pixel wide line between two screen points,
	// snapped to the centres of the pixels containing them.
	stroke := func(p, q vec.Vec2) {
		r.raster.StrokeLine(snap(p), snap(q), painter.Emit)
	}
	// line draws the separator between two grid-space points.
	line := func(x0, y0, x1, y1 float64) {
		stroke(coverage.Transform(m, vec.Vec2{X: x0, Y: y0}),
			coverage.Transform(m, vec.Vec2{X: x1, Y: y1}))
	}

	b := cam.Bounds()
	nw := vec.Vec2{X: b.LLx, Y: b.LLy}
	ne := vec.Vec2{X: b.URx, Y: b.LLy}
	sw := vec.Vec2{X: b.LLx, Y: b.URy}
	se := vec.Vec2{X: b.URx, Y: b.URy}
	stroke(nw, ne)
	stroke(nw, sw)
	stroke(sw, se)
	stroke(ne, se)

	w, h := float64(g.width), float64(g.height)
	gridLines := showGrid && cam.Scale() > GridLineThreshold
	if gridLines {
		for row := 1; row < g.height; row++ {
			line(0, float64(row), w, float64(row))
		}
		for col := 1; col < g.width; col++ {
			line(float64(col), 0, float64(col), h)
		}
	}

	Logger().Debug("frame rendered",
		"cells", cells,
		"zoom", cam.Zoom(),
		"offset", cam.Offset(),
		"gridLines", gridLines)
}

// drawCells paints the visible cells with non-zero alpha and returns how
// many were drawn.  Cell edges are rounded down to whole pixels, so
// neighbouring cells meet without gaps or overlap.
func (r *Renderer) drawCells(screen draw.Image, g *Grid, m matrix.Matrix) int {
	bounds := screen.Bounds()
	s, ox, oy := m[0], m[4], m[5]

	// range of cells which can touch the screen
	colMin := max(0, int(math.Floor((float64(bounds.Min.X)-ox)/s)))
	colMax := min(g.width, int(math.Floor((float64(bounds.Max.X)-ox)/s))+1)
	rowMin := max(0, int(math.Floor((float64(bounds.Min.Y)-oy)/s)))
	rowMax := min(g.height, int(math.Floor((float64(bounds.Max.Y)-oy)/s))+1)

	edge := func(i int, o float64) int {
		return int(math.Floor(float64(i)*s + o))
	}

	src := image.NewUniform(Color(0))
	n := 0
	for row := rowMin; row < rowMax; row++ {
		y0, y1 := edge(row, oy), edge(row+1, oy)
		y1 = max(y1, y0+1)
		for col := colMin; col < colMax; col++ {
			c := g.pix[row*g.width+col]
			if c.A() == 0 {
				continue
			}
			x0, x1 := edge(col, ox), edge(col+1, ox)
			x1 = max(x1, x0+1)
			cell := image.Rect(x0, y0, x1, y1).Intersect(bounds)
			if cell.Empty() {
				continue
			}
			src.C = c
			draw.Draw(screen, cell, src, image.Point{}, draw.Over)
			n++
		}
	}
	return n
}

// snap moves p to the centre of the pixel containing it.
func snap(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: math.Floor(p.X) + 0.5, Y: math.Floor(p.Y) + 0.5}
}
