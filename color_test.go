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
	"image/color"
	"testing"
)

func TestColorChannels(t *testing.T) {
	c := NewColor(0x12, 0x34, 0x56, 0x78)
	if c != 0x12345678 {
		t.Fatalf("NewColor: got %s, want #12345678", c)
	}
	r, g, b, a := c.Channels()
	if r != 0x12 || g != 0x34 || b != 0x56 || a != 0x78 {
		t.Errorf("Channels: got %02x %02x %02x %02x", r, g, b, a)
	}

	// values outside [0, 255] keep their low eight bits
	if c := NewColor(256, -1, 511, 0); c != 0x00FFFF00 {
		t.Errorf("NewColor(256, -1, 511, 0) = %s", c)
	}
}

func TestSetChannelIsolation(t *testing.T) {
	setters := []struct {
		name  string
		set   func(*Color, int)
		get   func(Color) uint8
		shift uint
	}{
		{"R", (*Color).SetR, Color.R, rShift},
		{"G", (*Color).SetG, Color.G, gShift},
		{"B", (*Color).SetB, Color.B, bShift},
		{"A", (*Color).SetA, Color.A, aShift},
	}

	for _, s := range setters {
		t.Run(s.name, func(t *testing.T) {
			for _, start := range []Color{0, 0xFFFFFFFF, 0x12345678} {
				for _, v := range []int{0, 1, 0x80, 0xFF, 0x1AB} {
					c := start
					s.set(&c, v)
					if got := s.get(c); got != uint8(v&0xFF) {
						t.Errorf("%s: set %#x, got %#x", start, v, got)
					}
					other := ^Color(channelMask << s.shift)
					if c&other != start&other {
						t.Errorf("%s: setting %s to %#x changed other channels: %s",
							start, s.name, v, c)
					}
				}
			}
		})
	}
}

func TestColorArithmetic(t *testing.T) {
	cases := []struct {
		name string
		got  Color
		want Color
	}{
		{"Add", Color(0xFF0000FF).Add(0x010000FF), 0x000000FE},
		{"Sub", Black.Sub(White), 0x01010100},
		{"Mul", Color(0x02030405).Mul(0x80808080), 0x00800080},
		{"BlendHalf", Black.Blend(White, 0.5), Gray},
		{"BlendZero", Red.Blend(Blue, 0), Red},
		{"BlendOne", Red.Blend(Blue, 1), Blue},
		{"WithAlpha", Red.WithAlpha(0x40), 0xFF000040},
		{"ScaleAlpha", White.ScaleAlpha(0.5), 0xFFFFFF7F},
		{"ScaleAlphaClamped", White.ScaleAlpha(3), White},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %s, want %s", tc.got, tc.want)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	cases := []struct {
		in, want Color
	}{
		{0x000000FF, 0xFEFEFEFF},
		{0x7F7F7F10, 0x7F7F7F10},
		{0xFFFFFF00, 0xFFFFFF00},
		{0x01020380, 0xFDFCFB80},
	}
	for _, tc := range cases {
		if got := tc.in.Invert(); got != tc.want {
			t.Errorf("%s.Invert() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestColorInterface(t *testing.T) {
	var c color.Color = Color(0xFF000080)
	want := color.NRGBAModel.Convert(color.NRGBA{R: 0xFF, A: 0x80})
	r0, g0, b0, a0 := c.RGBA()
	r1, g1, b1, a1 := want.RGBA()
	if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
		t.Errorf("RGBA() = %d %d %d %d, want %d %d %d %d", r0, g0, b0, a0, r1, g1, b1, a1)
	}

	if got := ColorModel.Convert(color.NRGBA{R: 1, G: 2, B: 3, A: 255}); got != Color(0x010203FF) {
		t.Errorf("ColorModel.Convert = %v", got)
	}
	if s := Color(0xABCDEF01).String(); s != "#ABCDEF01" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#F00", 0xFF0000FF, true},
		{"#F008", 0xFF000088, true},
		{"#224f8f", 0x224F8FFF, true},
		{"12345678", 0x12345678, true},
		{"", 0, false},
		{"#12", 0, false},
		{"#GGG", 0, false},
		{"#1234567", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if (err == nil) != tc.ok {
				t.Fatalf("ParseHex(%q): unexpected error status %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseHex(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestPaletteLookup(t *testing.T) {
	pal := DefaultPalette()
	if got := pal.Lookup("bg_primary"); got != 0x224F8FFF {
		t.Errorf("bg_primary = %s", got)
	}
	if got := pal.Lookup("no_such_colour"); got != 0 {
		t.Errorf("missing entry = %s, want zero", got)
	}
}
