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

// Package testcases contains named rendering scenarios, used for
// regression tests, benchmarks and the tools which generate reference
// output.
package testcases

import (
	"strings"

	"seehuhn.de/go/raster3d"
)

// TestCase defines a single 2D rendering test.
type TestCase struct {
	Name   string      // lowercase a-z and _ only
	Width  int         // canvas width in pixels
	Height int         // canvas height in pixels
	Ops    []Operation // drawn in order onto a black canvas
}

// Operation is a single primitive.
type Operation interface {
	isOperation()
}

// Line draws a line between two points.
type Line struct {
	P0, P1 raster3d.Point2
	Color  raster3d.Color
}

func (Line) isOperation() {}

// Wireframe draws the outline of a triangle.
type Wireframe struct {
	P     [3]raster3d.Point2
	Color raster3d.Color
}

func (Wireframe) isOperation() {}

// Fill draws a filled triangle.
type Fill struct {
	P     [3]raster3d.Point2
	Color raster3d.Color
}

func (Fill) isOperation() {}

// Shade draws a triangle with interpolated intensity.
type Shade struct {
	P     [3]raster3d.Point2
	Color raster3d.Color
}

func (Shade) isOperation() {}

// Draw paints all operations of the test case using r.
func (tc *TestCase) Draw(r *raster3d.Rasterizer) error {
	for _, op := range tc.Ops {
		var err error
		switch op := op.(type) {
		case Line:
			err = r.DrawLine(op.P0, op.P1, op.Color)
		case Wireframe:
			err = r.DrawWireframeTriangle(op.P[0], op.P[1], op.P[2], op.Color)
		case Fill:
			err = r.DrawFilledTriangle(op.P[0], op.P[1], op.P[2], op.Color)
		case Shade:
			err = r.DrawShadedTriangle(op.P[0], op.P[1], op.P[2], op.Color)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Render draws the test case onto a new black canvas.
func (tc *TestCase) Render() (*raster3d.Canvas, error) {
	c := raster3d.NewCanvas(tc.Width, tc.Height)
	err := tc.Draw(raster3d.NewRasterizer(c))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Mask returns a text picture of the canvas, one line per row, top row
// first.  Black pixels are shown as '.', white pixels as '#', and all
// other pixels by the high hex digit of their red channel.
func Mask(c *raster3d.Canvas) string {
	const digits = "0123456789abcdef"

	b := &strings.Builder{}
	b.Grow((c.Width() + 1) * c.Height())
	pix := c.Pix()
	for row := range c.Height() {
		for _, v := range pix[row*c.Width() : (row+1)*c.Width()] {
			switch col := raster3d.Color(v); col {
			case raster3d.Black:
				b.WriteByte('.')
			case raster3d.White:
				b.WriteByte('#')
			default:
				b.WriteByte(digits[col.R()>>4])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// pt is a helper to create a point with full intensity.
func pt(x, y int) raster3d.Point2 {
	return raster3d.Pt(x, y)
}

// ph is a helper to create a point with intensity h.
func ph(x, y int, h float64) raster3d.Point2 {
	return raster3d.PtH(x, y, h)
}

// tri is a helper for the three corners of a triangle.
func tri(p0, p1, p2 raster3d.Point2) [3]raster3d.Point2 {
	return [3]raster3d.Point2{p0, p1, p2}
}
