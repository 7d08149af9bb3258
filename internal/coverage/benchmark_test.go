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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// The benchmarks draw the separator lines of an n x n cell grid, one
// pixel wide, onto a 500x500 image.

var gridSizes = []int{10, 50, 100}

func BenchmarkStrokeGrid(b *testing.B) {
	const size = 500
	for _, n := range gridSizes {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			clip := rect.Rect{URx: size, URy: size}
			r := NewRasterizer(clip)
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			p := NewPainter(dst)
			step := float64(size) / float64(n)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(clip)
				r.Cap = graphics.LineCapSquare
				for i := 1; i < n; i++ {
					c := float64(int(float64(i)*step)) + 0.5
					r.StrokeLine(vec.Vec2{X: c, Y: 0.5}, vec.Vec2{X: c, Y: size - 0.5}, p.Emit)
					r.StrokeLine(vec.Vec2{X: 0.5, Y: c}, vec.Vec2{X: size - 0.5, Y: c}, p.Emit)
				}
			}
		})
	}
}

// BenchmarkVectorGrid draws the same lines with x/image/vector.
func BenchmarkVectorGrid(b *testing.B) {
	const size = 500
	for _, n := range gridSizes {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Black)
			step := float32(size) / float32(n)

			rectangle := func(x0, y0, x1, y1 float32) {
				r.MoveTo(x0, y0)
				r.LineTo(x1, y0)
				r.LineTo(x1, y1)
				r.LineTo(x0, y1)
				r.ClosePath()
			}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				for i := 1; i < n; i++ {
					c := float32(int(float32(i) * step))
					rectangle(c, 0, c+1, size)
					rectangle(0, c, size, c+1)
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
