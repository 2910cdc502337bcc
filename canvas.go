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

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
)

// Canvas is a fixed-size buffer of packed colors.
//
// Pixels are addressed in a coordinate system centered in the middle of
// the buffer, with x growing to the right and y growing upwards.  The
// pixel (x, y) is stored at index row*width + col, where
// row = height/2 - y and col = x + width/2.
//
// A Canvas also implements [image.Image], using the usual row-major
// coordinates with the origin in the top-left corner.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	pix           []uint32
}

// NewCanvas allocates a canvas of the given size, filled with black.
// Non-positive dimensions give an empty canvas.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.height }

// Pix returns the underlying row-major pixel buffer.
// Each entry is a packed 0x00RRGGBB value.
func (c *Canvas) Pix() []uint32 { return c.pix }

// Range returns the smallest and largest valid centered coordinates.
func (c *Canvas) Range() (xMin, yMin, xMax, yMax int) {
	xMin = -c.width / 2
	xMax = xMin + c.width - 1
	yMax = c.height / 2
	yMin = yMax - c.height + 1
	return xMin, yMin, xMax, yMax
}

// Extent returns the area covered by the canvas in centered coordinates,
// where every pixel is a unit square around its integer coordinates.
func (c *Canvas) Extent() rect.Rect {
	xMin, yMin, xMax, yMax := c.Range()
	return rect.Rect{
		LLx: float64(xMin) - 0.5,
		LLy: float64(yMin) - 0.5,
		URx: float64(xMax) + 0.5,
		URy: float64(yMax) + 0.5,
	}
}

// Contains reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) Contains(x, y int) bool {
	_, ok := c.index(x, y)
	return ok
}

func (c *Canvas) index(x, y int) (int, bool) {
	col := x + c.width/2
	row := c.height/2 - y
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return 0, false
	}
	return row*c.width + col, true
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	v := uint32(col)
	for i := range c.pix {
		c.pix[i] = v
	}
}

// SetPixel sets the pixel at centered coordinates (x, y).  If the
// coordinates are outside the canvas, a *RasterizationError is returned
// and the canvas is not modified.
func (c *Canvas) SetPixel(x, y int, col Color) error {
	i, ok := c.index(x, y)
	if !ok {
		return &RasterizationError{X: x, Y: y, Width: c.width, Height: c.height}
	}
	c.pix[i] = uint32(col)
	return nil
}

// Pixel returns the color at centered coordinates (x, y).
// The second return value is false if the coordinates are outside the
// canvas.
func (c *Canvas) Pixel(x, y int) (Color, bool) {
	i, ok := c.index(x, y)
	if !ok {
		return 0, false
	}
	return Color(c.pix[i]), true
}

// ColorModel implements the [image.Image] interface.
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements the [image.Image] interface.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At implements the [image.Image] interface.
// The coordinates are row-major, not centered.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	return Color(c.pix[y*c.width+x])
}

// WriteRGBA stores the canvas into dst as 8-bit RGBA quadruples, in the
// layout used by [image.RGBA] and by most display back-ends.  dst must
// have room for 4*width*height bytes.
func (c *Canvas) WriteRGBA(dst []byte) {
	dst = dst[:4*len(c.pix)]
	for i, v := range c.pix {
		dst[4*i] = byte(v >> 16)
		dst[4*i+1] = byte(v >> 8)
		dst[4*i+2] = byte(v)
		dst[4*i+3] = 0xFF
	}
}

// RGBA returns a copy of the canvas as an [image.RGBA].
func (c *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	c.WriteRGBA(img.Pix)
	return img
}
