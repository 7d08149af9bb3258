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

// Package shape describes drawing operations as values, one type per kind
// of drawing tool, and applies them to a grid.
package shape

import (
	"image"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelgrid"
)

// Shape is one drawing operation.  The concrete types are [Line], [AALine],
// [Circle], [Rectangle], [Fill] and [Clear].
type Shape interface {
	isShape()
}

// Line is a Bresenham line between two cells.
type Line struct {
	A, B  image.Point
	Color pixelgrid.Color
	Width int // number of cells across the line (>=1)
}

// AALine is an anti-aliased line between two points in grid space.
type AALine struct {
	A, B  vec.Vec2
	Color pixelgrid.Color
}

// Circle is a midpoint circle.
type Circle struct {
	Center      image.Point
	Radius      int
	Color       pixelgrid.Color
	Filled      bool
	AntiAliased bool
}

// Rectangle covers Size.X by Size.Y cells starting at Corner.
type Rectangle struct {
	Corner, Size image.Point
	Color        pixelgrid.Color
	Filled       bool
}

// Fill is a flood fill starting at Seed.
type Fill struct {
	Seed  image.Point
	Color pixelgrid.Color
}

// Clear resets every cell of the grid.
type Clear struct{}

func (Line) isShape()      {}
func (AALine) isShape()    {}
func (Circle) isShape()    {}
func (Rectangle) isShape() {}
func (Fill) isShape()      {}
func (Clear) isShape()     {}

// RectangleBetween returns the rectangle which has the cells a and b as
// opposite corners.
func RectangleBetween(a, b image.Point, c pixelgrid.Color, filled bool) Rectangle {
	extent := func(from, to int) int {
		if to >= from {
			return to - from + 1
		}
		return to - from - 1
	}
	return Rectangle{
		Corner: a,
		Size:   image.Point{X: extent(a.X, b.X), Y: extent(a.Y, b.Y)},
		Color:  c,
		Filled: filled,
	}
}

// Draw applies s to g.
func Draw(g *pixelgrid.Grid, s Shape) {
	switch s := s.(type) {
	case Line:
		pixelgrid.Line(g, s.A, s.B, s.Color, s.Width)
	case AALine:
		pixelgrid.AALine(g, s.A, s.B, s.Color)
	case Circle:
		if s.AntiAliased {
			pixelgrid.AACircle(g, s.Center, s.Radius, s.Color, s.Filled)
		} else {
			pixelgrid.Circle(g, s.Center, s.Radius, s.Color, s.Filled)
		}
	case Rectangle:
		pixelgrid.Rectangle(g, s.Corner, s.Size, s.Color, s.Filled)
	case Fill:
		pixelgrid.FloodFill(g, s.Seed, s.Color)
	case Clear:
		g.Reset()
	}
}

// DrawAll applies the shapes to g in order.
func DrawAll(g *pixelgrid.Grid, shapes []Shape) {
	for _, s := range shapes {
		Draw(g, s)
	}
}
