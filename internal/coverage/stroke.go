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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeLine computes coverage for the straight segment from a to b,
// stroked with r.Width and r.Cap.  Coverage is delivered as for [Rasterizer.Fill].
//
// Square caps extend the segment by half the width at both ends; every
// other cap style is drawn as a butt cap.  A zero-length segment with
// square caps gives a square centred on a; otherwise it gives nothing.
func (r *Rasterizer) StrokeLine(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.Fill(r.lineOutline(a, b), emit)
}

// lineOutline returns the closed outline of a stroked segment.
func (r *Rasterizer) lineOutline(a, b vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		hw := r.Width / 2
		if !(hw > 0) {
			return
		}

		square := r.Cap == graphics.LineCapSquare
		d := b.Sub(a)
		var t vec.Vec2
		if l := d.Length(); l >= zeroLengthThreshold {
			t = d.Mul(1 / l)
		} else if square {
			t = vec.Vec2{X: 1}
		} else {
			return
		}
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(hw) // normal, 90° CCW from t
		e := t.Mul(hw)

		moveTo := func(p vec.Vec2) bool { return yield(path.CmdMoveTo, []vec.Vec2{p}) }
		lineTo := func(p vec.Vec2) bool { return yield(path.CmdLineTo, []vec.Vec2{p}) }
		if square {
			a = a.Sub(e)
			b = b.Add(e)
		}
		_ = moveTo(a.Add(n)) &&
			lineTo(b.Add(n)) &&
			lineTo(b.Sub(n)) &&
			lineTo(a.Sub(n)) &&
			yield(path.CmdClose, nil)
	}
}
