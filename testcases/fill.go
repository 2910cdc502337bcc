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

var fillCases = []TestCase{
	{
		Name:   "right_small",
		Width:  3,
		Height: 3,
		Ops:    []Operation{Fill{P: tri(pt(-1, 1), pt(1, 1), pt(-1, -1)), Color: raster3d.White}},
	},
	{
		Name:   "apex_centre",
		Width:  3,
		Height: 3,
		Ops:    []Operation{Fill{P: tri(pt(-1, 1), pt(0, 0), pt(-1, -1)), Color: raster3d.White}},
	},
	{
		Name:   "apex_right",
		Width:  3,
		Height: 3,
		Ops:    []Operation{Fill{P: tri(pt(-1, 1), pt(1, 0), pt(-1, -1)), Color: raster3d.White}},
	},
	{
		Name:   "point",
		Width:  3,
		Height: 3,
		Ops:    []Operation{Fill{P: tri(pt(0, 0), pt(0, 0), pt(0, 0)), Color: raster3d.White}},
	},
	{
		Name:   "horizontal",
		Width:  9,
		Height: 9,
		Ops:    []Operation{Fill{P: tri(pt(3, 0), pt(-4, 0), pt(1, 0)), Color: raster3d.White}},
	},
	{
		Name:   "general",
		Width:  21,
		Height: 21,
		Ops:    []Operation{Fill{P: tri(pt(-8, -7), pt(9, 2), pt(0, 9)), Color: raster3d.White}},
	},
	{
		Name:   "thin",
		Width:  21,
		Height: 21,
		Ops:    []Operation{Fill{P: tri(pt(-10, -1), pt(10, 1), pt(0, 0)), Color: raster3d.White}},
	},
	{
		Name:   "flat_top",
		Width:  21,
		Height: 21,
		Ops:    []Operation{Fill{P: tri(pt(-9, 5), pt(9, 5), pt(0, -9)), Color: raster3d.White}},
	},
	{
		Name:   "flat_bottom",
		Width:  21,
		Height: 21,
		Ops:    []Operation{Fill{P: tri(pt(-9, -6), pt(9, -6), pt(2, 8)), Color: raster3d.White}},
	},
	{
		Name:   "pair",
		Width:  21,
		Height: 21,
		Ops: []Operation{
			Fill{P: tri(pt(-8, -8), pt(8, -8), pt(8, 8)), Color: raster3d.White},
			Fill{P: tri(pt(-8, -8), pt(8, 8), pt(-8, 8)), Color: raster3d.RGB(0x80, 0x80, 0x80)},
		},
	},
}
