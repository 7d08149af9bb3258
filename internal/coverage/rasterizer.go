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

// Package coverage computes anti-aliased pixel coverage for filled outlines
// and stroked line segments, and composites the result onto images.
//
// For each pixel in a scanline two values are accumulated:
//
//   - cover: the signed vertical extent of edge pieces in this pixel column,
//     which applies in full to every pixel further right;
//   - area: the part of cover which falls to the right of the edge piece
//     within the pixel itself.
//
// Integrating cover from the left and adding area gives the signed area of
// the outline within each pixel.  With the nonzero winding rule the
// coverage is this value's magnitude, clamped to 1.
package coverage

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer converts outlines to pixel coverage values between 0 (outside)
// and 1 (inside).  Internal buffers are reused between calls and never
// shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip bounds the output to this device-space rectangle, given with
	// integer coordinates.  LLx/LLy is the minimum corner.
	Clip rect.Rect

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the style used for both ends of a stroked segment.
	Cap graphics.LineCapStyle

	cover  []float32 // cover change per pixel; reused as output
	area   []float32 // area within pixel
	edges  []edge
	active []int // indices into edges

	bbXMin, bbXMax float64 // device-space bounding box of edges
	bbYMin, bbYMax float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with a
// 1 pixel wide butt-capped stroke.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters, keeping buffer capacity.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// Fill computes coverage for p using the nonzero winding rule.  Open
// subpaths are closed implicitly.  Coordinates are in pixels.  Only
// straight segments are supported: curve commands are skipped.
//
// Coverage is delivered row by row, in increasing y order.  The slice
// passed to emit is only valid for the duration of the call.
func (r *Rasterizer) Fill(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.bbXMin, r.bbYMin = math.Inf(1), math.Inf(1)
	r.bbXMax, r.bbYMax = math.Inf(-1), math.Inf(-1)

	var current, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
			open = true
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
			open = false
		}
	}
	if open {
		r.addEdge(current, start)
	}

	r.scan(emit)
}

// Transform applies m to the point v.
func Transform(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// addEdge stores the segment from d0 to d1.
func (r *Rasterizer) addEdge(d0, d1 vec.Vec2) {
	if d0 == d1 {
		return
	}

	dy := d1.Y - d0.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: d0.X, y0: d0.Y,
		x1: d1.X, y1: d1.Y,
		dxdy: (d1.X - d0.X) / dy,
	})

	r.bbXMin = min(r.bbXMin, d0.X, d1.X)
	r.bbXMax = max(r.bbXMax, d0.X, d1.X)
	r.bbYMin = min(r.bbYMin, d0.Y, d1.Y)
	r.bbYMax = max(r.bbYMax, d0.Y, d1.Y)
}

// scan walks the scanlines of the edge bounding box with an active edge
// list and emits the non-zero part of each row.
func (r *Rasterizer) scan(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].yMin() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of the part of e within scanline y to
// the cover and area buffers, which start at device column xMin.  Edge
// pieces left of xMin count as full coverage for the whole row; pieces
// right of xMax are ignored.  The return value reports whether e crosses
// the scanline.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return false
	}
	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}
	height := yBot - yTop

	xl := e.x0 + e.dxdy*(yTop-e.y0)
	xr := e.x0 + e.dxdy*(yBot-e.y0)
	if xl > xr {
		xl, xr = xr, xl
	}

	pl := int(math.Floor(xl))
	pr := int(math.Floor(xr))
	if pl == pr {
		r.deposit(pl, sign*height, (xl+xr)/2, xMin, xMax)
		return true
	}

	// Split the piece at pixel column boundaries.  The vertical extent of
	// each part is proportional to its horizontal extent.
	lo := pl
	if pl < xMin {
		b := min(xr, float64(xMin))
		r.deposit(xMin-1, sign*height*(b-xl)/(xr-xl), 0, xMin, xMax)
		lo = xMin
	}
	for p := lo; p <= min(pr, xMax-1); p++ {
		a := max(xl, float64(p))
		b := min(xr, float64(p+1))
		if b <= a {
			continue
		}
		dy := height * (b - a) / (xr - xl)
		r.deposit(p, sign*dy, (a+b)/2, xMin, xMax)
	}
	return true
}

// deposit records a signed vertical extent v at horizontal position x in
// pixel column p.
func (r *Rasterizer) deposit(p int, v, x float64, xMin, xMax int) {
	switch {
	case p < xMin:
		r.cover[0] += float32(v)
		r.area[0] += float32(v)
	case p < xMax:
		i := p - xMin
		r.cover[i] += float32(v)
		r.area[i] += float32(v * (1 - (x - float64(p))))
	}
}

// integrateNonZero turns the accumulated cover and area values into
// coverage, in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of a coverage row and its offset, or
// nil if the row is empty.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which a stroked segment is
	// treated as a single point.
	zeroLengthThreshold = 1e-10
)
