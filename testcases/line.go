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

var lineCases = []TestCase{
	{
		Name:   "diagonal",
		Width:  5,
		Height: 5,
		Ops:    []Operation{Line{P0: pt(-2, 2), P1: pt(0, -2), Color: raster3d.White}},
	},
	{
		Name:   "shallow",
		Width:  21,
		Height: 21,
		Ops:    []Operation{Line{P0: pt(-10, -3), P1: pt(10, 4), Color: raster3d.White}},
	},
	{
		Name:   "steep",
		Width:  21,
		Height: 21,
		Ops:    []Operation{Line{P0: pt(-3, -10), P1: pt(2, 10), Color: raster3d.White}},
	},
	{
		Name:   "star",
		Width:  21,
		Height: 21,
		Ops:    star(),
	},
	{
		Name:   "point",
		Width:  3,
		Height: 3,
		Ops:    []Operation{Line{P0: pt(0, 0), P1: pt(0, 0), Color: raster3d.White}},
	},
	{
		Name:   "gray_over_white",
		Width:  11,
		Height: 11,
		Ops: []Operation{
			Line{P0: pt(-5, 0), P1: pt(5, 0), Color: raster3d.White},
			Line{P0: pt(0, -5), P1: pt(0, 5), Color: raster3d.RGB(0x80, 0x80, 0x80)},
		},
	},
}

// star returns sixteen lines from the centre, in all directions.
func star() []Operation {
	ends := [][2]int{
		{9, 0}, {8, 4}, {6, 6}, {4, 8}, {0, 9}, {-4, 8}, {-6, 6}, {-8, 4},
		{-9, 0}, {-8, -4}, {-6, -6}, {-4, -8}, {0, -9}, {4, -8}, {6, -6}, {8, -4},
	}
	ops := make([]Operation, len(ends))
	for i, e := range ends {
		ops[i] = Line{P0: pt(0, 0), P1: pt(e[0], e[1]), Color: raster3d.White}
	}
	return ops
}
