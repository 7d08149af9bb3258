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
	"strconv"
	"strings"
)

// Palette names the colours used by the renderer.  Names which are not
// present resolve to the zero colour.
//
// The renderer uses "bg_primary" for the screen background, and blends
// between "fg_secondary" and "fg_primary" for the grid border and
// separator lines.
type Palette map[string]Color

// DefaultPalette returns the standard colour theme.
func DefaultPalette() Palette {
	return Palette{
		"fg_primary":    0xCCCCCCFF,
		"fg_secondary":  0x868686FF,
		"fg_highlight":  0xE2C07EFF,
		"fg_highlight2": 0x317CD6FF,
		"fg_warning":    0xF88061FF,
		"bg_primary":    0x224F8FFF,
		"bg_secondary":  0x224F8FFF,
	}
}

// Lookup returns the colour stored under name, or zero.
func (p Palette) Lookup(name string) Color {
	return p[name]
}

// ParseHex parses a colour in one of the forms #RGB, #RGBA, #RRGGBB or
// #RRGGBBAA.  The leading '#' is optional.  Colours without an alpha
// component are opaque.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 3, 4:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
	case 6, 8:
		// pass
	default:
		return 0, fmt.Errorf("invalid colour %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "FF"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("could not read colour %q: %w", s, err)
	}
	return Color(v), nil
}
