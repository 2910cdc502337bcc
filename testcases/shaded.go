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

var shadedCases = []TestCase{
	{
		Name:   "gradient",
		Width:  21,
		Height: 21,
		Ops: []Operation{
			Shade{P: tri(ph(-9, -9, 0.1), ph(9, -9, 1), ph(0, 9, 0.5)), Color: raster3d.White},
		},
	},
	{
		Name:   "flat_row",
		Width:  9,
		Height: 9,
		Ops: []Operation{
			Shade{P: tri(ph(-4, 0, 0), ph(4, 0, 1), ph(0, 0, 0.5)), Color: raster3d.White},
		},
	},
	{
		Name:   "overexposed",
		Width:  15,
		Height: 15,
		Ops: []Operation{
			Shade{P: tri(ph(-6, -6, 1.5), ph(6, -6, 0.5), ph(0, 6, 2)), Color: raster3d.White},
		},
	},
}
