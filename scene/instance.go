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
	"seehuhn.de/go/raster3d/matrix"
	"seehuhn.de/go/raster3d/vec3"
)

// ModelID identifies a model within a scene.
type ModelID int

// InstanceID identifies an instance within a scene.
type InstanceID int

// Instance places a model in the world.
type Instance struct {
	Model ModelID

	// Transform maps model coordinates to world coordinates.
	// See [Placement].
	Transform matrix.Matrix4

	Hidden bool
}

// Placement returns the model transform of an object at the given
// position, with the given orientation and uniform scale.
// The result is translation · orientation · scale.
func Placement(position vec3.Vec3, orientation matrix.Matrix4, scale float64) matrix.Matrix4 {
	return matrix.Translation(position).Mul(orientation).Mul(matrix.Scale(scale))
}

// Camera is the viewpoint of a scene.
//
// The camera looks along its local +z axis, with +y up.  Orientation maps
// camera directions to world directions and is expected to be a rotation.
type Camera struct {
	Position    vec3.Vec3
	Orientation matrix.Matrix4
}

// NewCamera returns a camera at the given position, looking along the
// world z axis.
func NewCamera(position vec3.Vec3) Camera {
	return Camera{
		Position:    position,
		Orientation: matrix.Identity,
	}
}

// Transform returns the matrix which maps world coordinates to camera
// coordinates.
func (c Camera) Transform() matrix.Matrix4 {
	return c.Orientation.Transpose().Mul(matrix.Translation(c.Position.Neg()))
}

// Move shifts the camera by d, given in camera coordinates.  For example,
// Move(vec3.Vec3{Z: 1}) moves one unit forward.
func (c *Camera) Move(d vec3.Vec3) {
	c.Position = c.Position.Add(c.Orientation.Apply(d))
}

// Turn rotates the camera about the vertical world axis.  Positive angles
// turn to the left.
func (c *Camera) Turn(angle float64) {
	c.Orientation = matrix.RotationY(-angle).Mul(c.Orientation)
}
