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

package raster3d

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds indicates a pixel coordinate outside the canvas.
var ErrOutOfBounds = errors.New("raster3d: coordinate outside canvas")

// RasterizationError reports an attempt to paint outside the canvas.
type RasterizationError struct {
	X, Y          int // centered pixel coordinates
	Width, Height int // canvas size
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("raster3d: pixel (%d,%d) outside %dx%d canvas",
		e.X, e.Y, e.Width, e.Height)
}

// Unwrap returns [ErrOutOfBounds].
func (e *RasterizationError) Unwrap() error {
	return ErrOutOfBounds
}
