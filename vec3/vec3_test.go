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

package vec3

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -4, Y: 0.5, Z: 2}

	if got, want := a.Add(b), (Vec3{X: -3, Y: 2.5, Z: 5}); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec3{X: 5, Y: 1.5, Z: 1}); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := a.Mul(-2), (Vec3{X: -2, Y: -4, Z: -6}); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
	if got, want := a.Neg(), (Vec3{X: -1, Y: -2, Z: -3}); got != want {
		t.Errorf("Neg: got %v, want %v", got, want)
	}
	if got, want := a.Dot(b), 3.0; got != want {
		t.Errorf("Dot: got %v, want %v", got, want)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := Vec3{Z: 1}
	if got := x.Cross(y); got != z {
		t.Errorf("x × y = %v, want %v", got, z)
	}
	if got := y.Cross(x); got != z.Neg() {
		t.Errorf("y × x = %v, want %v", got, z.Neg())
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{X: 3, Y: 0, Z: 4}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("length after Normalize = %v", v.Length())
	}
	if got := Zero.Normalize(); got != Zero {
		t.Errorf("Normalize(0) = %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec3{X: 1, Y: 2, Z: 3}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vec3{X: math.Inf(1)}).IsFinite() {
		t.Error("Inf not detected")
	}
	if (Vec3{Z: math.NaN()}).IsFinite() {
		t.Error("NaN not detected")
	}
}
