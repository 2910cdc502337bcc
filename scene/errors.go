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
	"errors"
	"fmt"

	"seehuhn.de/go/raster3d/vec3"
)

var (
	// ErrBehindCamera indicates a vertex which is at, behind, or too close
	// to the camera plane to be projected.
	ErrBehindCamera = errors.New("scene: vertex behind camera")

	// ErrUnknownModel is returned for a ModelID which does not refer to a
	// model of the scene.
	ErrUnknownModel = errors.New("scene: unknown model")

	// ErrUnknownInstance is returned for an InstanceID which does not
	// refer to a live instance of the scene.
	ErrUnknownInstance = errors.New("scene: unknown instance")

	// ErrBadIndex indicates a triangle which refers to a vertex the model
	// does not have, or a shade table of the wrong length.
	ErrBadIndex = errors.New("scene: vertex index out of range")
)

// ProjectionError reports a vertex which could not be projected onto the
// canvas.
type ProjectionError struct {
	Model  string    // name of the model, if known
	Vertex int       // index of the vertex in the model, or -1
	Pos    vec3.Vec3 // position in camera space
}

func (e *ProjectionError) Error() string {
	where := "vertex"
	if e.Vertex >= 0 {
		where = fmt.Sprintf("vertex %d", e.Vertex)
	}
	if e.Model != "" {
		where = fmt.Sprintf("model %q %s", e.Model, where)
	}
	return fmt.Sprintf("scene: %s at camera position (%g, %g, %g) cannot be projected",
		where, e.Pos.X, e.Pos.Y, e.Pos.Z)
}

// Unwrap returns [ErrBehindCamera].
func (e *ProjectionError) Unwrap() error {
	return ErrBehindCamera
}
