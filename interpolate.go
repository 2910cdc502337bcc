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

// Interpolate returns the values of the linear function through (i0, d0)
// and (i1, d1), sampled at every integer from i0 to i1 inclusive.
//
// If i0 == i1, the result is the single value d0. If i1 < i0, the result
// is empty; callers order their endpoints first.
func Interpolate(i0 int, d0 float64, i1 int, d1 float64) []float64 {
	return AppendInterpolate(nil, i0, d0, i1, d1)
}

// AppendInterpolate is like [Interpolate], but appends the values to dst
// and returns the extended slice.
func AppendInterpolate(dst []float64, i0 int, d0 float64, i1 int, d1 float64) []float64 {
	if i0 == i1 {
		return append(dst, d0)
	}
	if i1 < i0 {
		return dst
	}

	// The values are accumulated by repeated addition of the slope rather
	// than computed as d0 + k*a.  Both the line and the triangle code rely
	// on the exact rounding this produces.
	a := (d1 - d0) / float64(i1-i0)
	d := d0
	for range i1 - i0 + 1 {
		dst = append(dst, d)
		d += a
	}
	return dst
}
