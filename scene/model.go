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

package scene

import (
	"fmt"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/vec3"
)

// Triangle refers to three vertices of a model by index.
type Triangle struct {
	V     [3]int
	Color raster3d.Color
}

// Model is a triangle mesh in model coordinates.
//
// Models are added to a [Scene] once and then shared by all instances
// referring to them.  A model must not be modified after it has been
// added to a scene.
type Model struct {
	Name      string
	Vertices  []vec3.Vec3
	Triangles []Triangle

	// Shades optionally gives an intensity for every vertex, used in
	// [Shaded] mode.  If Shades is nil, all vertices have intensity 1.
	Shades []float64
}

// Validate checks that all triangles refer to existing vertices and that
// the shade table, if present, has one entry per vertex.
func (m *Model) Validate() error {
	n := len(m.Vertices)
	for i, tri := range m.Triangles {
		for _, v := range tri.V {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: triangle %d of %q uses vertex %d of %d",
					ErrBadIndex, i, m.Name, v, n)
			}
		}
	}
	if m.Shades != nil && len(m.Shades) != n {
		return fmt.Errorf("%w: %q has %d shades for %d vertices",
			ErrBadIndex, m.Name, len(m.Shades), n)
	}
	return nil
}

// shade returns the intensity of vertex i.
func (m *Model) shade(i int) float64 {
	if m.Shades == nil {
		return 1
	}
	return m.Shades[i]
}
