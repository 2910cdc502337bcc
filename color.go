// seehuhn.de/go/raster3d - a software 3D rasterizer
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

package raster3d

// Color is a packed 0x00RRGGBB color value.
// The top eight bits are unused.
type Color uint32

// Some frequently used colors.
const (
	Black  Color = 0x000000
	White  Color = 0xFFFFFF
	Red    Color = 0xFF0000
	Green  Color = 0x00FF00
	Blue   Color = 0x0000FF
	Yellow Color = 0xFFFF00
	Purple Color = 0xFF00FF
	Cyan   Color = 0x00FFFF
	Teal   Color = 0x008080
)

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Scale multiplies every channel by the intensity h and truncates the
// result to eight bits.  Channels which would leave the range [0, 255]
// saturate; the second return value reports whether this happened.
func (c Color) Scale(h float64) (Color, bool) {
	r, rs := scaleChannel(c.R(), h)
	g, gs := scaleChannel(c.G(), h)
	b, bs := scaleChannel(c.B(), h)
	return RGB(r, g, b), rs || gs || bs
}

func scaleChannel(ch uint8, h float64) (uint8, bool) {
	v := float64(ch) * h
	switch {
	case v > 255:
		return 255, true
	case v >= 0:
		return uint8(v), false
	default: // negative or NaN
		return 0, true
	}
}

// RGBA implements the [image/color.Color] interface.
// Canvas colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xFFFF
}
