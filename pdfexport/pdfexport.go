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

// Package pdfexport writes projected frames as vector graphics to PDF
// files.
//
// Every pixel of the canvas corresponds to one PDF unit, so the page has
// the same size as the canvas in points.  The output uses the same
// painter's order as the raster renderer, but triangle edges are exact
// rather than snapped to pixels.
package pdfexport

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/scene"
)

// Options controls the appearance of the PDF output.
type Options struct {
	// Background is painted behind all triangles.
	Background raster3d.Color

	// Outline selects stroked triangle outlines instead of filled
	// triangles.
	Outline bool

	// LineWidth is the width of outlines.  Default: 1.
	LineWidth float64
}

// WriteFrame renders the scene as seen by cam into a single-page PDF.
// The canvas size gives the page size; the canvas itself is not modified.
// Triangles are outlined in [scene.Wireframe] mode and filled otherwise.
func WriteFrame(fname string, s *scene.Scene, cam scene.Camera, c *raster3d.Canvas) error {
	tris, err := s.Project(cam, c)
	if err != nil {
		return err
	}
	opt := &Options{
		Background: s.Background,
		Outline:    s.Mode == scene.Wireframe,
	}
	return Write(fname, tris, c.Extent(), opt)
}

// Write stores the given triangles in a single-page PDF.  Triangle
// coordinates are centered canvas coordinates, and extent is the area of
// the canvas in these coordinates, as returned by [raster3d.Canvas.Extent].
func Write(fname string, tris []scene.ProjectedTriangle, extent rect.Rect, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	lw := opt.LineWidth
	if lw <= 0 {
		lw = 1
	}

	paper := &pdf.Rectangle{
		URx: extent.Dx(),
		URy: extent.Dy(),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfColor(opt.Background))
	page.Rectangle(0, 0, extent.Dx(), extent.Dy())
	page.Fill()

	// PDF and canvas coordinates both have y pointing up; only the origin
	// differs.
	page.Transform(matrix.Identity.Translate(-extent.LLx, -extent.LLy))
	page.SetLineWidth(lw)

	for _, tri := range tris {
		outline := trianglePath(tri.P)
		for cmd, pts := range outline.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}

		col := pdfColor(tri.Color)
		if opt.Outline {
			page.SetStrokeColor(col)
			page.Stroke()
		} else {
			page.SetFillColor(col)
			page.Fill()
		}
	}

	return page.Close()
}

// trianglePath returns the closed outline of a triangle.  The outline
// passes through the pixel centres of the vertices.
func trianglePath(p [3]raster3d.Point2) *path.Data {
	v := func(q raster3d.Point2) vec.Vec2 {
		return vec.Vec2{X: float64(q.X), Y: float64(q.Y)}
	}
	return (&path.Data{}).
		MoveTo(v(p[0])).
		LineTo(v(p[1])).
		LineTo(v(p[2])).
		Close()
}

func pdfColor(c raster3d.Color) color.Color {
	return color.DeviceRGB(
		float64(c.R())/255,
		float64(c.G())/255,
		float64(c.B())/255)
}
