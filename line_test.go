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
	"testing"

	"seehuhn.de/go/geom/vec"
)

// plotted returns the set of non-zero cells of g.
func plotted(g *Grid) map[image.Point]Color {
	res := make(map[image.Point]Color)
	for y := range g.height {
		for x := range g.width {
			if c := g.Get(x, y); c != 0 {
				res[image.Pt(x, y)] = c
			}
		}
	}
	return res
}

func mustGrid(t testing.TB, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestLineHorizontal(t *testing.T) {
	g := mustGrid(t, 10, 10)
	Line(g, image.Pt(0, 0), image.Pt(9, 0), Red, 1)

	cells := plotted(g)
	if len(cells) != 10 {
		t.Fatalf("%d cells plotted, want 10", len(cells))
	}
	for x := range 10 {
		if cells[image.Pt(x, 0)] != Red {
			t.Errorf("cell (%d, 0) not red", x)
		}
	}
}

func TestLineSinglePoint(t *testing.T) {
	g := mustGrid(t, 5, 5)
	Line(g, image.Pt(2, 3), image.Pt(2, 3), Blue, 1)
	cells := plotted(g)
	if len(cells) != 1 || cells[image.Pt(2, 3)] != Blue {
		t.Errorf("got %v, want only (2,3)", cells)
	}
}

func TestLineDiagonal(t *testing.T) {
	g := mustGrid(t, 6, 6)
	Line(g, image.Pt(0, 0), image.Pt(5, 5), Green, 1)
	cells := plotted(g)
	if len(cells) != 6 {
		t.Errorf("%d cells plotted, want 6", len(cells))
	}
	for i := range 6 {
		if _, ok := cells[image.Pt(i, i)]; !ok {
			t.Errorf("cell (%d, %d) missing", i, i)
		}
	}
}

func TestLineSymmetric(t *testing.T) {
	ends := [][2]image.Point{
		{{0, 0}, {9, 3}},
		{{1, 8}, {7, 0}},
		{{9, 9}, {0, 4}},
		{{3, 0}, {5, 9}},
		{{0, 5}, {9, 5}},
	}
	for _, e := range ends {
		for _, width := range []int{1, 2, 3} {
			g1 := mustGrid(t, 10, 10)
			g2 := mustGrid(t, 10, 10)
			Line(g1, e[0], e[1], White, width)
			Line(g2, e[1], e[0], White, width)
			if !g1.Equal(g2) {
				t.Errorf("%v-%v width %d: direction changes the result", e[0], e[1], width)
			}
			for _, p := range e {
				if g1.Get(p.X, p.Y) == 0 {
					t.Errorf("%v-%v width %d: end point %v not plotted", e[0], e[1], width, p)
				}
			}
		}
	}
}

func TestLineWidth(t *testing.T) {
	g := mustGrid(t, 10, 10)
	Line(g, image.Pt(0, 5), image.Pt(9, 5), Red, 3)
	cells := plotted(g)
	if len(cells) != 30 {
		t.Errorf("%d cells plotted, want 30", len(cells))
	}
	for x := range 10 {
		for _, y := range []int{4, 5, 6} {
			if _, ok := cells[image.Pt(x, y)]; !ok {
				t.Errorf("cell (%d, %d) missing", x, y)
			}
		}
	}

	// widths below one draw a thin line
	g.Reset()
	Line(g, image.Pt(0, 5), image.Pt(9, 5), Red, 0)
	if n := g.Plotted(); n != 10 {
		t.Errorf("width 0: %d cells plotted, want 10", n)
	}
}

func TestLineClipped(t *testing.T) {
	g := mustGrid(t, 5, 5)
	Line(g, image.Pt(-10, 2), image.Pt(20, 2), Red, 1)
	if n := g.Plotted(); n != 5 {
		t.Errorf("%d cells plotted, want 5", n)
	}
}

func TestAALineAxisAligned(t *testing.T) {
	cases := []struct {
		name string
		a, b vec.Vec2
		cell func(i int) image.Point
	}{
		{"horizontal", vec.Vec2{X: 0, Y: 2}, vec.Vec2{X: 5, Y: 2},
			func(i int) image.Point { return image.Pt(i, 2) }},
		{"vertical", vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 2, Y: 0},
			func(i int) image.Point { return image.Pt(2, i) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, 8, 8)
			AALine(g, tc.a, tc.b, White)

			cells := plotted(g)
			if len(cells) != 6 {
				t.Errorf("%d cells plotted, want 6", len(cells))
			}
			for i := range 6 {
				want := uint8(255)
				if i == 0 || i == 5 {
					want = 127
				}
				c := cells[tc.cell(i)]
				if c.A() != want {
					t.Errorf("cell %v: alpha %d, want %d", tc.cell(i), c.A(), want)
				}
				if c.WithAlpha(0xFF) != White {
					t.Errorf("cell %v: colour %s changed", tc.cell(i), c)
				}
			}
		})
	}
}

func TestAALineCoverage(t *testing.T) {
	g := mustGrid(t, 10, 10)
	AALine(g, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 8, Y: 3}, Red)

	// every interior column splits its coverage between two rows
	for x := 1; x < 8; x++ {
		total := 0
		for y := range 10 {
			total += int(g.Get(x, y).A())
		}
		if total < 250 || total > 255 {
			t.Errorf("column %d: total alpha %d", x, total)
		}
	}
}
