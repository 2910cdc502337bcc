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

package testcases

import (
	"math"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/matrix"
	"seehuhn.de/go/raster3d/scene"
	"seehuhn.de/go/raster3d/shapes"
	"seehuhn.de/go/raster3d/vec3"
)

// SceneCase is a named 3D scene.
type SceneCase struct {
	Name   string
	Width  int // canvas width in pixels
	Height int // canvas height in pixels

	// Build returns a new scene, ready to render.
	Build func() (*scene.Scene, error)
}

// Render builds the scene and renders it onto a new canvas.
func (sc *SceneCase) Render() (*raster3d.Canvas, error) {
	s, err := sc.Build()
	if err != nil {
		return nil, err
	}
	c := raster3d.NewCanvas(sc.Width, sc.Height)
	if err := s.Render(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Scenes lists the 3D test scenes.
var Scenes = []SceneCase{
	{Name: "cube_pair", Width: 600, Height: 600, Build: cubePair},
	{Name: "cube_spin", Width: 400, Height: 400, Build: cubeSpin},
	{Name: "solids", Width: 400, Height: 300, Build: solids},
}

// cubePair shows two unit cubes side by side.
func cubePair() (*scene.Scene, error) {
	s := scene.New()
	s.Background = raster3d.Teal
	cube, err := s.AddModel(shapes.Cube())
	if err != nil {
		return nil, err
	}
	for _, pos := range []vec3.Vec3{{X: -1.5, Y: 0, Z: 7}, {X: 1.25, Y: 2, Z: 7.5}} {
		_, err := s.AddInstance(cube, scene.Placement(pos, matrix.Identity, 1))
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// cubeSpin shows a single cube, turned so that three faces are visible.
func cubeSpin() (*scene.Scene, error) {
	s := scene.New()
	s.DepthSort = true
	cube, err := s.AddModel(shapes.Cube())
	if err != nil {
		return nil, err
	}
	turn := matrix.RotationY(math.Pi / 6).Mul(matrix.RotationX(math.Pi / 8))
	_, err = s.AddInstance(cube, scene.Placement(vec3.Vec3{Z: 6}, turn, 1))
	if err != nil {
		return nil, err
	}
	return s, nil
}

// solids shows three shaded solids generated from distance functions.
func solids() (*scene.Scene, error) {
	s := scene.New()
	s.Mode = scene.Shaded
	s.DepthSort = true
	s.Background = raster3d.Black
	s.ViewportWidth = 4.0 / 3.0

	opt := &shapes.Options{Cells: 20}
	sphere, err := shapes.Sphere(1, &shapes.Options{Cells: 20, Color: raster3d.RGB(0xE0, 0x40, 0x40)})
	if err != nil {
		return nil, err
	}
	cylinder, err := shapes.Cylinder(2, 0.6, &shapes.Options{Cells: 20, Color: raster3d.RGB(0x40, 0xC0, 0x40)})
	if err != nil {
		return nil, err
	}
	box, err := shapes.Box(vec3.Vec3{X: 1.2, Y: 1.2, Z: 1.2}, 0.1, opt)
	if err != nil {
		return nil, err
	}

	place := []struct {
		model  *scene.Model
		pos    vec3.Vec3
		orient matrix.Matrix4
	}{
		{sphere, vec3.Vec3{X: -2, Y: 0, Z: 8}, matrix.Identity},
		{cylinder, vec3.Vec3{X: 0, Y: -0.5, Z: 8}, matrix.RotationX(math.Pi / 2)},
		{box, vec3.Vec3{X: 2, Y: 0.5, Z: 8}, matrix.RotationY(math.Pi / 5)},
	}
	for _, p := range place {
		id, err := s.AddModel(p.model)
		if err != nil {
			return nil, err
		}
		_, err = s.AddInstance(id, scene.Placement(p.pos, p.orient, 1))
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}
