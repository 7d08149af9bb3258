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
)

func TestRectangle(t *testing.T) {
	cases := []struct {
		name         string
		corner, size image.Point
		filled       bool
		want         int
	}{
		{"outline", image.Pt(1, 1), image.Pt(4, 3), false, 10},
		{"filled", image.Pt(1, 1), image.Pt(4, 3), true, 12},
		{"negative", image.Pt(4, 3), image.Pt(-4, -3), true, 12},
		{"single", image.Pt(2, 2), image.Pt(0, 0), false, 1},
		{"thin", image.Pt(0, 2), image.Pt(5, 1), false, 5},
		{"clipped", image.Pt(-2, -2), image.Pt(4, 4), true, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, 8, 8)
			Rectangle(g, tc.corner, tc.size, Yellow, tc.filled)
			if n := g.Plotted(); n != tc.want {
				t.Errorf("%d cells plotted, want %d", n, tc.want)
			}
		})
	}

	g := mustGrid(t, 8, 8)
	Rectangle(g, image.Pt(1, 1), image.Pt(4, 3), Yellow, false)
	for _, p := range []image.Point{{1, 1}, {4, 1}, {1, 3}, {4, 3}} {
		if g.Get(p.X, p.Y) != Yellow {
			t.Errorf("corner %v not painted", p)
		}
	}
	if g.Get(2, 2) != 0 {
		t.Error("interior of outline painted")
	}
	if g.Get(5, 1) != 0 || g.Get(1, 4) != 0 {
		t.Error("rectangle extends past its size")
	}
}
