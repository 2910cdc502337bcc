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

// Package raster3d implements the pixel end of a software 3D renderer:
// a packed 32-bit canvas addressed in centered coordinates, and a scanline
// rasterizer for lines, wireframe triangles, flat-filled triangles and
// intensity-shaded triangles.
//
// All primitives are built on [Interpolate], which walks an integer
// independent variable (a pixel row or column) and produces one dependent
// value per step. No anti-aliasing and no depth test is performed: later
// primitives simply overwrite earlier ones.
//
// The transform pipeline which turns 3D models into the 2D points consumed
// here lives in the subpackages [seehuhn.de/go/raster3d/matrix] and
// [seehuhn.de/go/raster3d/scene].
package raster3d
