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

package shapes

import (
	"math"
	"testing"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/vec3"
)

func TestCube(t *testing.T) {
	m := Cube()
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 8 || len(m.Triangles) != 12 {
		t.Fatalf("got %d vertices and %d triangles", len(m.Vertices), len(m.Triangles))
	}

	// every face is a pair of triangles of one color, spanning 4 vertices
	for i := 0; i < 12; i += 2 {
		a, b := m.Triangles[i], m.Triangles[i+1]
		if a.Color != b.Color {
			t.Errorf("face %d has two colors", i/2)
		}
		corners := make(map[int]bool)
		for _, v := range append(a.V[:], b.V[:]...) {
			corners[v] = true
		}
		if len(corners) != 4 {
			t.Errorf("face %d has %d corners", i/2, len(corners))
		}

		// all corners of a face agree in one coordinate
		same := 0
		for axis := range 3 {
			first := coord(m.Vertices[a.V[0]], axis)
			ok := true
			for v := range corners {
				if coord(m.Vertices[v], axis) != first {
					ok = false
				}
			}
			if ok {
				same++
			}
		}
		if same != 1 {
			t.Errorf("face %d is not a side of the cube", i/2)
		}
	}

	for _, v := range m.Vertices {
		if math.Abs(v.X) != 1 || math.Abs(v.Y) != 1 || math.Abs(v.Z) != 1 {
			t.Errorf("unexpected vertex %v", v)
		}
	}
}

func coord(v vec3.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func TestSphere(t *testing.T) {
	m, err := Sphere(1, &Options{Cells: 16})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(m.Triangles) < 100 {
		t.Fatalf("only %d triangles", len(m.Triangles))
	}

	// without welding there would be three vertices per triangle
	if len(m.Vertices) >= 2*len(m.Triangles) {
		t.Errorf("%d vertices for %d triangles: vertices not merged",
			len(m.Vertices), len(m.Triangles))
	}

	for _, v := range m.Vertices {
		if r := v.Length(); math.Abs(r-1) > 0.15 {
			t.Errorf("vertex %v at distance %g from the centre", v, r)
		}
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, h := range m.Shades {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	if lo < defaultAmbient-1e-9 || hi > 1+1e-9 {
		t.Errorf("shades range from %g to %g", lo, hi)
	}
	if hi-lo < 0.5 {
		t.Errorf("shades range from %g to %g, expected a visible gradient", lo, hi)
	}
}

func TestSolidOptions(t *testing.T) {
	m, err := Box(vec3.Vec3{X: 2, Y: 1, Z: 1}, 0.1, &Options{
		Cells: 12,
		Color: raster3d.Cyan,
		Flat:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}

	colors := make(map[raster3d.Color]bool)
	for _, tri := range m.Triangles {
		colors[tri.Color] = true
		if tri.Color.R() != 0 {
			t.Fatalf("color %06x is not a shade of cyan", uint32(tri.Color))
		}
	}
	if len(colors) < 3 {
		t.Errorf("flat shading gives only %d colors", len(colors))
	}

	for _, v := range m.Vertices {
		if math.Abs(v.X) > 1.1 || math.Abs(v.Y) > 0.6 || math.Abs(v.Z) > 0.6 {
			t.Errorf("vertex %v outside the box", v)
		}
	}
}

func TestCylinder(t *testing.T) {
	m, err := Cylinder(2, 0.5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "cylinder" {
		t.Errorf("got name %q", m.Name)
	}
	for _, v := range m.Vertices {
		if math.Hypot(v.X, v.Y) > 0.55 || math.Abs(v.Z) > 1.05 {
			t.Errorf("vertex %v outside the cylinder", v)
		}
	}
}

func TestInvalidSolid(t *testing.T) {
	if _, err := Sphere(-1, nil); err == nil {
		t.Error("negative radius accepted")
	}
}
