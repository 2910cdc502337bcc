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

// Package matrix implements 4×4 homogeneous transformation matrices.
//
// Matrices act on column vectors: the product m.Mul(n) first applies n and
// then m. A point p is transformed by promoting it to (p.X, p.Y, p.Z, 1).
package matrix

import (
	"math"

	"seehuhn.de/go/raster3d/vec3"
)

// Vec4 is a homogeneous four-component vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// Point returns the homogeneous vector (p.X, p.Y, p.Z, 1).
func Point(p vec3.Vec3) Vec4 {
	return Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1}
}

// Vec3 returns the first three components, discarding W.
func (v Vec4) Vec3() vec3.Vec3 {
	return vec3.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Matrix4 is a 4×4 matrix stored as four columns.
// Column 3 holds the translation part of an affine transformation.
type Matrix4 [4]Vec4

// Identity is the identity transformation.
var Identity = Matrix4{
	{X: 1},
	{Y: 1},
	{Z: 1},
	{W: 1},
}

// Zero is the matrix with all entries zero.
var Zero = Matrix4{}

// Scale returns a uniform scaling by s.
func Scale(s float64) Matrix4 {
	return Matrix4{
		{X: s},
		{Y: s},
		{Z: s},
		{W: 1},
	}
}

// Translation returns the translation by t.
func Translation(t vec3.Vec3) Matrix4 {
	return Matrix4{
		{X: 1},
		{Y: 1},
		{Z: 1},
		{X: t.X, Y: t.Y, Z: t.Z, W: 1},
	}
}

// RotationX returns a rotation by angle radians about the x axis.
// Positive angles turn y towards z.
func RotationX(angle float64) Matrix4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix4{
		{X: 1},
		{Y: c, Z: s},
		{Y: -s, Z: c},
		{W: 1},
	}
}

// RotationY returns a rotation by angle radians about the y axis.
// Positive angles turn z towards x.
func RotationY(angle float64) Matrix4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix4{
		{X: c, Z: -s},
		{Y: 1},
		{X: s, Z: c},
		{W: 1},
	}
}

// RotationZ returns a rotation by angle radians about the z axis.
// Positive angles turn x towards y.
func RotationZ(angle float64) Matrix4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix4{
		{X: c, Y: s},
		{X: -s, Y: c},
		{Z: 1},
		{W: 1},
	}
}

// At returns the entry in the given row and column.
func (m Matrix4) At(row, col int) float64 {
	v := m[col]
	switch row {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// Row returns row i of the matrix.
func (m Matrix4) Row(i int) Vec4 {
	return Vec4{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2), W: m.At(i, 3)}
}

// Transpose returns the transposed matrix. For a pure rotation this is
// the inverse rotation.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// Mul returns the matrix product m·n.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	return Matrix4{
		m.MulVec(n[0]),
		m.MulVec(n[1]),
		m.MulVec(n[2]),
		m.MulVec(n[3]),
	}
}

// MulVec returns the product m·v.
func (m Matrix4) MulVec(v Vec4) Vec4 {
	// The conversions keep the compiler from fusing multiply and add, so
	// that products are bit-identical on all architectures.
	return Vec4{
		X: float64(m[0].X*v.X) + float64(m[1].X*v.Y) + float64(m[2].X*v.Z) + float64(m[3].X*v.W),
		Y: float64(m[0].Y*v.X) + float64(m[1].Y*v.Y) + float64(m[2].Y*v.Z) + float64(m[3].Y*v.W),
		Z: float64(m[0].Z*v.X) + float64(m[1].Z*v.Y) + float64(m[2].Z*v.Z) + float64(m[3].Z*v.W),
		W: float64(m[0].W*v.X) + float64(m[1].W*v.Y) + float64(m[2].W*v.Z) + float64(m[3].W*v.W),
	}
}

// Apply transforms the point p. The homogeneous coordinate of the result
// is discarded without division.
func (m Matrix4) Apply(p vec3.Vec3) vec3.Vec3 {
	return m.MulVec(Point(p)).Vec3()
}
