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
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/scene"
	"seehuhn.de/go/raster3d/vec3"
)

// ErrEmptyMesh is returned when tessellating a solid gives no triangles.
var ErrEmptyMesh = errors.New("shapes: solid has no surface")

// Options controls the tessellation and lighting of solids.
// The zero value selects the defaults given for each field.
type Options struct {
	// Cells is the number of marching cubes cells along the longest side
	// of the bounding box.  Default: 24.
	Cells int

	// Color is the color of all triangles.  Default: light gray.
	Color raster3d.Color

	// Light points from the object towards the light source, in model
	// coordinates.  Default: up, to the left and towards the viewer.
	Light vec3.Vec3

	// Ambient is the intensity of faces which are turned away from the
	// light.  Default: 0.25.
	Ambient float64

	// Flat bakes the face lighting into the triangle colors, so that
	// solids look three-dimensional also when drawn without shading.
	Flat bool
}

func (o *Options) withDefaults() Options {
	var res Options
	if o != nil {
		res = *o
	}
	if res.Cells <= 0 {
		res.Cells = defaultCells
	}
	if res.Color == 0 {
		res.Color = raster3d.RGB(0xCC, 0xCC, 0xCC)
	}
	if res.Light == vec3.Zero {
		res.Light = vec3.Vec3{X: -1, Y: 1, Z: -1}
	}
	res.Light = res.Light.Normalize()
	if res.Ambient <= 0 {
		res.Ambient = defaultAmbient
	}
	res.Ambient = min(res.Ambient, 1)
	return res
}

// Sphere returns a sphere of the given radius, centered at the origin.
func Sphere(radius float64, opt *Options) (*scene.Model, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	return FromSolid("sphere", s, opt)
}

// Cylinder returns a cylinder with its axis along z, centered at the
// origin.
func Cylinder(height, radius float64, opt *Options) (*scene.Model, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("cylinder: %w", err)
	}
	return FromSolid("cylinder", s, opt)
}

// Box returns a box with the given edge lengths, centered at the origin.
// Edges are rounded with the given radius.
func Box(size vec3.Vec3, round float64, opt *Options) (*scene.Model, error) {
	s, err := sdf.Box3D(v3.Vec{X: size.X, Y: size.Y, Z: size.Z}, round)
	if err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}
	return FromSolid("box", s, opt)
}

// FromSolid tessellates the surface of s using marching cubes.
//
// Vertices shared between neighbouring triangles are merged, and every
// vertex gets a shade value from the angle between the light and the
// averaged normal of the adjacent faces.
func FromSolid(name string, s sdf.SDF3, opt *Options) (*scene.Model, error) {
	o := opt.withDefaults()

	mc := render.NewMarchingCubesUniform(o.Cells)
	triangles := render.ToTriangles(s, mc)

	m := &scene.Model{Name: name}
	var normals []vec3.Vec3
	index := make(map[[3]int64]int)
	vertex := func(v v3.Vec) int {
		k := weldKey(v)
		if i, ok := index[k]; ok {
			return i
		}
		i := len(m.Vertices)
		index[k] = i
		m.Vertices = append(m.Vertices, vec3.Vec3{X: v.X, Y: v.Y, Z: v.Z})
		normals = append(normals, vec3.Zero)
		return i
	}

	for _, tri := range triangles {
		var idx [3]int
		for j := range 3 {
			idx[j] = vertex(tri[j])
		}
		if idx[0] == idx[1] || idx[1] == idx[2] || idx[2] == idx[0] {
			continue
		}

		n := tri.Normal()
		normal := vec3.Vec3{X: n.X, Y: n.Y, Z: n.Z}
		if !normal.IsFinite() {
			continue
		}
		for _, i := range idx {
			normals[i] = normals[i].Add(normal)
		}

		col := o.Color
		if o.Flat {
			col, _ = col.Scale(o.intensity(normal))
		}
		m.Triangles = append(m.Triangles, scene.Triangle{V: idx, Color: col})
	}
	if len(m.Triangles) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyMesh)
	}

	m.Shades = make([]float64, len(m.Vertices))
	for i, n := range normals {
		m.Shades[i] = o.intensity(n.Normalize())
	}
	return m, nil
}

// intensity returns the brightness of a surface with unit normal n.
func (o *Options) intensity(n vec3.Vec3) float64 {
	diffuse := max(n.Dot(o.Light), 0)
	return o.Ambient + (1-o.Ambient)*diffuse
}

// weldKey quantizes a vertex position, so that marching cubes vertices
// computed from the same cube edge map to the same key.
func weldKey(v v3.Vec) [3]int64 {
	return [3]int64{
		int64(math.Round(v.X / weldTolerance)),
		int64(math.Round(v.Y / weldTolerance)),
		int64(math.Round(v.Z / weldTolerance)),
	}
}

const (
	defaultCells   = 24
	defaultAmbient = 0.25
	weldTolerance  = 1e-6
)
