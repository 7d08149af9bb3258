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

func TestFloodFillUniform(t *testing.T) {
	g := mustGrid(t, 5, 5)
	for y := range 5 {
		for x := range 5 {
			g.Set(x, y, Green)
		}
	}

	n := FloodFill(g, image.Pt(2, 2), Red)
	if n != 25 {
		t.Errorf("%d cells painted, want 25", n)
	}
	for p, c := range plotted(g) {
		if c != Red {
			t.Errorf("cell %v is %s", p, c)
		}
	}
}

func TestFloodFillBounded(t *testing.T) {
	g := mustGrid(t, 8, 8)
	Rectangle(g, image.Pt(0, 0), image.Pt(7, 7), White, false)

	n := FloodFill(g, image.Pt(3, 3), Blue)
	if n != 25 {
		t.Errorf("%d cells painted, want 25", n)
	}
	for y := 1; y < 6; y++ {
		for x := 1; x < 6; x++ {
			if g.Get(x, y) != Blue {
				t.Errorf("interior cell (%d, %d) not filled", x, y)
			}
		}
	}
	if g.Get(0, 3) != White {
		t.Error("border was repainted")
	}
	if g.Get(7, 7) != 0 {
		t.Error("fill leaked outside the border")
	}
}

func TestFloodFillFourConnected(t *testing.T) {
	// a diagonal wall stops a 4-connected fill
	g := mustGrid(t, 4, 4)
	Line(g, image.Pt(0, 3), image.Pt(3, 0), White, 1)

	n := FloodFill(g, image.Pt(0, 0), Red)
	if n != 6 {
		t.Errorf("%d cells painted, want 6", n)
	}
	if g.Get(3, 3) != 0 {
		t.Error("fill crossed a diagonal wall")
	}
}

func TestFloodFillNoOp(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Set(1, 1, Red)
	before := g.Clone()

	if n := FloodFill(g, image.Pt(1, 1), Red); n != 0 {
		t.Errorf("same colour: %d cells painted", n)
	}
	if n := FloodFill(g, image.Pt(-1, 2), Blue); n != 0 {
		t.Errorf("seed outside: %d cells painted", n)
	}
	if n := FloodFill(g, image.Pt(4, 0), Blue); n != 0 {
		t.Errorf("seed outside: %d cells painted", n)
	}
	if !g.Equal(before) {
		t.Error("grid changed")
	}
}

func BenchmarkFloodFill(b *testing.B) {
	g := mustGrid(b, 500, 500)
	colors := []Color{Red, Blue}
	i := 0
	for b.Loop() {
		FloodFill(g, image.Pt(250, 250), colors[i%2])
		i++
	}
}
