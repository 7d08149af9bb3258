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
	"image/color"
)

// Color is a packed 32-bit colour value, laid out as 0xRRGGBBAA.
// The zero value is fully transparent and marks an empty cell.
//
// Channel arithmetic never clamps: every result is reduced to the low
// eight bits of each channel.
type Color uint32

const (
	rShift = 24
	gShift = 16
	bShift = 8
	aShift = 0

	channelMask = 0xFF
)

// Named colours.
const (
	White   Color = 0xFFFFFFFF
	Black   Color = 0x000000FF
	Red     Color = 0xFF0000FF
	Green   Color = 0x00FF00FF
	Blue    Color = 0x0000FFFF
	Yellow  Color = 0xFFFF00FF
	Cyan    Color = 0x00FFFFFF
	Magenta Color = 0xFF00FFFF
	Gray    Color = 0x7F7F7FFF
	Orange  Color = 0xFF7F00FF
	Purple  Color = 0x7F00FFFF
)

// NewColor packs four channel values into a Color.
// Each value is truncated to its low eight bits.
func NewColor(r, g, b, a int) Color {
	return Color(uint32(r&channelMask)<<rShift |
		uint32(g&channelMask)<<gShift |
		uint32(b&channelMask)<<bShift |
		uint32(a&channelMask)<<aShift)
}

// Channels returns the red, green, blue and alpha channels of c.
func (c Color) Channels() (r, g, b, a uint8) {
	return c.R(), c.G(), c.B(), c.A()
}

func (c Color) R() uint8 { return c.channel(rShift) }
func (c Color) G() uint8 { return c.channel(gShift) }
func (c Color) B() uint8 { return c.channel(bShift) }
func (c Color) A() uint8 { return c.channel(aShift) }

func (c *Color) SetR(v int) { c.setChannel(rShift, v) }
func (c *Color) SetG(v int) { c.setChannel(gShift, v) }
func (c *Color) SetB(v int) { c.setChannel(bShift, v) }
func (c *Color) SetA(v int) { c.setChannel(aShift, v) }

func (c Color) channel(shift uint) uint8 {
	return uint8(uint32(c) >> shift & channelMask)
}

// setChannel clears the bits of one channel and ORs in the new value.
// The other three channels are left untouched.
func (c *Color) setChannel(shift uint, v int) {
	*c = Color(uint32(*c)&^(channelMask<<shift) | uint32(v&channelMask)<<shift)
}

// Add returns the per-channel sum of c and d, modulo 256.
func (c Color) Add(d Color) Color {
	return NewColor(
		int(c.R())+int(d.R()),
		int(c.G())+int(d.G()),
		int(c.B())+int(d.B()),
		int(c.A())+int(d.A()))
}

// Sub returns the per-channel difference of c and d, modulo 256.
func (c Color) Sub(d Color) Color {
	return NewColor(
		int(c.R())-int(d.R()),
		int(c.G())-int(d.G()),
		int(c.B())-int(d.B()),
		int(c.A())-int(d.A()))
}

// Mul returns the per-channel product of c and d, modulo 256.
func (c Color) Mul(d Color) Color {
	return NewColor(
		int(c.R())*int(d.R()),
		int(c.G())*int(d.G()),
		int(c.B())*int(d.B()),
		int(c.A())*int(d.A()))
}

// Blend interpolates linearly between c (t=0) and d (t=1), channel by
// channel, truncating towards zero. t is not clamped, so values outside
// [0, 1] extrapolate.
func (c Color) Blend(d Color, t float64) Color {
	lerp := func(a, b uint8) int {
		return int(float64(a) + (float64(b)-float64(a))*t)
	}
	return NewColor(
		lerp(c.R(), d.R()),
		lerp(c.G(), d.G()),
		lerp(c.B(), d.B()),
		lerp(c.A(), d.A()))
}

// Invert reflects the red, green and blue channels about 127.
// Alpha is kept.  This is not a 255-complement: 0 maps to 254, and 255
// wraps around to 255.
func (c Color) Invert() Color {
	reflect := func(v uint8) int {
		return -(int(v) - 127) + 127
	}
	return NewColor(reflect(c.R()), reflect(c.G()), reflect(c.B()), int(c.A()))
}

// WithAlpha returns c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.SetA(int(a))
	return c
}

// ScaleAlpha multiplies the alpha channel of c by the coverage value cov,
// which is clamped to [0, 1].
func (c Color) ScaleAlpha(cov float64) Color {
	cov = min(max(cov, 0), 1)
	return c.WithAlpha(uint8(float64(c.A()) * cov))
}

// NRGBA converts c to a non-premultiplied standard library colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String formats c as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ColorModel converts arbitrary colours to packed Color values.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColor(int(n.R), int(n.G), int(n.B), int(n.A))
})
