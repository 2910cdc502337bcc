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

// Package shapes provides ready-made models: the colored unit cube, and
// smooth solids tessellated from signed distance functions.
package shapes

import (
	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/scene"
	"seehuhn.de/go/raster3d/vec3"
)

// Cube returns a cube with corners at (±1, ±1, ±1).  Each face is made of
// two triangles and has its own color.
func Cube() *scene.Model {
	tri := func(a, b, c int, col raster3d.Color) scene.Triangle {
		return scene.Triangle{V: [3]int{a, b, c}, Color: col}
	}
	return &scene.Model{
		Name: "cube",
		Vertices: []vec3.Vec3{
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
		},
		Triangles: []scene.Triangle{
			tri(0, 1, 2, raster3d.Red),
			tri(0, 2, 3, raster3d.Red),
			tri(4, 0, 3, raster3d.Green),
			tri(4, 3, 7, raster3d.Green),
			tri(5, 4, 7, raster3d.Blue),
			tri(5, 7, 6, raster3d.Blue),
			tri(1, 5, 6, raster3d.Yellow),
			tri(1, 6, 2, raster3d.Yellow),
			tri(4, 5, 1, raster3d.Purple),
			tri(4, 1, 0, raster3d.Purple),
			tri(2, 6, 7, raster3d.Cyan),
			tri(2, 7, 3, raster3d.Cyan),
		},
	}
}
