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

import "seehuhn.de/go/raster3d"

var wireframeCases = []TestCase{
	{
		Name:   "right",
		Width:  21,
		Height: 21,
		Ops: []Operation{
			Wireframe{P: tri(pt(-8, 8), pt(8, 8), pt(-8, -8)), Color: raster3d.White},
		},
	},
	{
		Name:   "thin",
		Width:  21,
		Height: 21,
		Ops: []Operation{
			Wireframe{P: tri(pt(-10, -1), pt(10, 1), pt(0, 0)), Color: raster3d.White},
		},
	},
	{
		Name:   "obtuse",
		Width:  21,
		Height: 21,
		Ops: []Operation{
			Wireframe{P: tri(pt(-9, -5), pt(9, -2), pt(-6, 7)), Color: raster3d.White},
		},
	},
}
