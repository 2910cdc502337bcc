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

package raster3d_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/testcases"
)

var benchSizes = []int{20, 200, 2000}

// benchTriangle returns a triangle covering about a third of a size×size
// canvas, in centered coordinates.
func benchTriangle(size int) [3]raster3d.Point2 {
	h := size/2 - 1
	return [3]raster3d.Point2{
		raster3d.PtH(-h, -h, 0.2),
		raster3d.PtH(h, -h/3, 1),
		raster3d.PtH(-h/4, h, 0.6),
	}
}

// BenchmarkFilledTriangle benchmarks our rasterizer filling a triangle.
func BenchmarkFilledTriangle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := raster3d.NewCanvas(size, size)
			r := raster3d.NewRasterizer(c)
			p := benchTriangle(size)

			b.ReportAllocs()
			for b.Loop() {
				_ = r.DrawFilledTriangle(p[0], p[1], p[2], raster3d.Yellow)
			}
		})
	}
}

// BenchmarkShadedTriangle benchmarks our rasterizer shading a triangle.
func BenchmarkShadedTriangle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := raster3d.NewCanvas(size, size)
			r := raster3d.NewRasterizer(c)
			p := benchTriangle(size)

			b.ReportAllocs()
			for b.Loop() {
				_ = r.DrawShadedTriangle(p[0], p[1], p[2], raster3d.Yellow)
			}
		})
	}
}

// BenchmarkVectorTriangle benchmarks x/image/vector filling the same
// triangle, as a point of comparison.  The vector package computes
// anti-aliased coverage, which is more work per pixel.
func BenchmarkVectorTriangle(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF})

			// convert to image coordinates
			p := benchTriangle(size)
			var xy [3][2]float32
			for i, q := range p {
				xy[i] = [2]float32{float32(q.X + size/2), float32(size/2 - q.Y)}
			}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(xy[0][0], xy[0][1])
				r.LineTo(xy[1][0], xy[1][1])
				r.LineTo(xy[2][0], xy[2][1])
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkLine(b *testing.B) {
	c := raster3d.NewCanvas(1000, 1000)
	r := raster3d.NewRasterizer(c)
	b.ReportAllocs()
	for b.Loop() {
		_ = r.DrawLine(raster3d.Pt(-499, -300), raster3d.Pt(499, 310), raster3d.White)
		_ = r.DrawLine(raster3d.Pt(-200, -499), raster3d.Pt(180, 499), raster3d.White)
	}
}

// BenchmarkScenes measures complete frames, including the projection of
// all vertices.
func BenchmarkScenes(b *testing.B) {
	for _, sc := range testcases.Scenes {
		b.Run(sc.Name, func(b *testing.B) {
			s, err := sc.Build()
			if err != nil {
				b.Fatal(err)
			}
			c := raster3d.NewCanvas(sc.Width, sc.Height)

			b.ReportAllocs()
			for b.Loop() {
				if err := s.Render(c); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
