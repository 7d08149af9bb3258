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

package shape

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelgrid"
)

// Sizes used when a script does not give them.
var (
	defaultGridSize   = image.Point{X: 100, Y: 100}
	defaultScreenSize = image.Point{X: 500, Y: 500}
)

// Script is a drawing session read from JSON: a grid, the screen it is
// shown on, the camera view, palette overrides and a list of shapes.
//
// Example:
//
//	{
//	  "grid": [10, 10],
//	  "screen": [500, 500],
//	  "view": {"zoom": 1.5, "pan": [20, 0]},
//	  "palette": {"bg_primary": "#000"},
//	  "shapes": [
//	    {"kind": "line", "points": [[0, 0], [9, 0]], "color": "#F00"},
//	    {"kind": "circle", "points": [[250, 250]], "space": "screen",
//	     "radius": 3, "color": "#00F", "filled": true}
//	  ]
//	}
//
// Points of shapes with "space": "screen" are screen pixels and are mapped
// to grid cells through the camera; the radius of such a circle is given
// in pixels, too.
type Script struct {
	Grid    image.Point
	Screen  image.Point
	Zoom    float64
	Pan     image.Point
	Palette map[string]pixelgrid.Color

	entries []entry
}

// entry is a decoded, validated shape description.  Its points are
// resolved to grid space when the camera is known.
type entry struct {
	kind   string
	screen bool
	points []vec.Vec2
	color  pixelgrid.Color
	width  int
	radius float64
	filled bool
	aa     bool
}

type jsonScript struct {
	Grid    *[2]int           `json:"grid"`
	Screen  *[2]int           `json:"screen"`
	View    *jsonView         `json:"view"`
	Palette map[string]string `json:"palette"`
	Shapes  []jsonShape       `json:"shapes"`
}

type jsonView struct {
	Zoom float64 `json:"zoom"`
	Pan  [2]int  `json:"pan"`
}

type jsonShape struct {
	Kind      string       `json:"kind"`
	Space     string       `json:"space"`
	Points    [][2]float64 `json:"points"`
	Color     string       `json:"color"`
	Width     int          `json:"width"`
	Radius    float64      `json:"radius"`
	Filled    bool         `json:"filled"`
	AntiAlias bool         `json:"antialias"`
}

// numPoints gives the number of points each shape kind takes.
var numPoints = map[string]int{
	"line":      2,
	"aaline":    2,
	"circle":    1,
	"rectangle": 2,
	"fill":      1,
	"clear":     0,
}

var errZoom = errors.New("zoom out of range")

// Decode reads a script from r.
func Decode(r io.Reader) (*Script, error) {
	var js jsonScript
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("could not decode script: %w", err)
	}

	s := &Script{
		Grid:    defaultGridSize,
		Screen:  defaultScreenSize,
		Zoom:    1,
		Palette: make(map[string]pixelgrid.Color),
	}
	if js.Grid != nil {
		s.Grid = image.Point{X: js.Grid[0], Y: js.Grid[1]}
	}
	if js.Screen != nil {
		s.Screen = image.Point{X: js.Screen[0], Y: js.Screen[1]}
	}
	if js.View != nil {
		if js.View.Zoom != 0 {
			s.Zoom = js.View.Zoom
		}
		s.Pan = image.Point{X: js.View.Pan[0], Y: js.View.Pan[1]}
	}
	if s.Zoom < pixelgrid.ZoomMin || s.Zoom > pixelgrid.ZoomMax {
		return nil, fmt.Errorf("%g not in [%g, %g]: %w",
			s.Zoom, pixelgrid.ZoomMin, pixelgrid.ZoomMax, errZoom)
	}

	for name, hex := range js.Palette {
		c, err := pixelgrid.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", name, err)
		}
		s.Palette[name] = c
	}

	for i, sh := range js.Shapes {
		e, err := decodeShape(sh)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		s.entries = append(s.entries, e)
	}
	return s, nil
}

func decodeShape(sh jsonShape) (entry, error) {
	want, ok := numPoints[sh.Kind]
	if !ok {
		return entry{}, fmt.Errorf("unknown shape kind %q", sh.Kind)
	}
	if len(sh.Points) != want {
		return entry{}, fmt.Errorf("%s needs %d points, got %d", sh.Kind, want, len(sh.Points))
	}

	e := entry{
		kind:   sh.Kind,
		width:  max(sh.Width, 1),
		radius: sh.Radius,
		filled: sh.Filled,
		aa:     sh.AntiAlias,
	}
	switch sh.Space {
	case "", "grid":
	case "screen":
		e.screen = true
	default:
		return entry{}, fmt.Errorf("unknown coordinate space %q", sh.Space)
	}
	for _, p := range sh.Points {
		e.points = append(e.points, vec.Vec2{X: p[0], Y: p[1]})
	}
	if sh.Kind != "clear" {
		c, err := pixelgrid.ParseHex(sh.Color)
		if err != nil {
			return entry{}, err
		}
		e.color = c
	}
	return e, nil
}

// NewGrid allocates the grid described by the script.
func (s *Script) NewGrid() (*pixelgrid.Grid, error) {
	return pixelgrid.NewGrid(s.Grid.X, s.Grid.Y)
}

// NewCamera returns a camera for g with the zoom and pan of the script.
func (s *Script) NewCamera(g *pixelgrid.Grid) (*pixelgrid.Camera, error) {
	cam, err := pixelgrid.NewCamera(g, s.Screen)
	if err != nil {
		return nil, err
	}
	cam.AdjustZoom(s.Zoom - cam.Zoom())
	cam.Pan(s.Pan)
	return cam, nil
}

// NewPalette returns the default palette with the overrides of the script
// applied.
func (s *Script) NewPalette() pixelgrid.Palette {
	pal := pixelgrid.DefaultPalette()
	for name, c := range s.Palette {
		pal[name] = c
	}
	return pal
}

// Len returns the number of shapes in the script.
func (s *Script) Len() int {
	return len(s.entries)
}

// Shapes returns the shapes of the script in grid space.  Screen-space
// points are mapped through cam.
func (s *Script) Shapes(cam *pixelgrid.Camera) []Shape {
	res := make([]Shape, 0, len(s.entries))
	for _, e := range s.entries {
		res = append(res, e.resolve(cam))
	}
	return res
}

func (e *entry) resolve(cam *pixelgrid.Camera) Shape {
	cell := func(i int) image.Point {
		p := image.Point{X: int(math.Floor(e.points[i].X)), Y: int(math.Floor(e.points[i].Y))}
		if e.screen {
			return cam.ScreenToGrid(p)
		}
		return p
	}
	point := func(i int) vec.Vec2 {
		p := e.points[i]
		if e.screen {
			m := cam.Matrix()
			return vec.Vec2{X: (p.X - m[4]) / m[0], Y: (p.Y - m[5]) / m[3]}
		}
		return p
	}
	radius := e.radius
	if e.screen {
		radius /= cam.Scale()
	}

	switch e.kind {
	case "line":
		return Line{A: cell(0), B: cell(1), Color: e.color, Width: e.width}
	case "aaline":
		return AALine{A: point(0), B: point(1), Color: e.color}
	case "circle":
		return Circle{
			Center:      cell(0),
			Radius:      int(radius),
			Color:       e.color,
			Filled:      e.filled,
			AntiAliased: e.aa,
		}
	case "rectangle":
		return RectangleBetween(cell(0), cell(1), e.color, e.filled)
	case "fill":
		return Fill{Seed: cell(0), Color: e.color}
	}
	return Clear{}
}
