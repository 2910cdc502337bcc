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

// Command genpdf writes every test case and scene as a vector PDF, for
// visual comparison with the raster output.  Optionally, the PDFs are
// rendered to PNGs using Ghostscript.  A contact sheet of the raster
// output of all cases is written as well.
//
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/imageio"
	"seehuhn.de/go/raster3d/pdfexport"
	"seehuhn.de/go/raster3d/scene"
	"seehuhn.de/go/raster3d/testcases"
)

const outDir = "testdata/pdf"

func main() {
	useGS := flag.Bool("gs", false, "render the PDF files to PNG using Ghostscript")
	sheetName := flag.String("sheet", filepath.Join(outDir, "contact.png"), "contact sheet file name")
	flag.Parse()

	// Create output directory
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var tiles []imageio.Tile
	emit := func(name string, c *raster3d.Canvas, write func(pdfPath string) error) {
		pdfPath := filepath.Join(outDir, name+".pdf")
		if err := write(pdfPath); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		if *useGS {
			pngPath := filepath.Join(outDir, name+".png")
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
		tiles = append(tiles, imageio.Tile{Label: name, Image: c})
	}

	// 2D test cases
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			c, err := tc.Render()
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			emit(name, c, func(pdfPath string) error {
				return writeCase(tc, c, pdfPath)
			})
		}
	}

	// 3D scenes
	for _, sc := range testcases.Scenes {
		s, err := sc.Build()
		if err != nil {
			panic(fmt.Errorf("%s: %w", sc.Name, err))
		}
		c := raster3d.NewCanvas(sc.Width, sc.Height)
		if err := s.Render(c); err != nil {
			panic(fmt.Errorf("%s: %w", sc.Name, err))
		}
		emit("scene_"+sc.Name, c, func(pdfPath string) error {
			return pdfexport.WriteFrame(pdfPath, s, s.Camera, c)
		})
	}

	sheet := imageio.ContactSheet(tiles, 6, 2)
	if err := imageio.Save(*sheetName, sheet); err != nil {
		panic(err)
	}
}

// writeCase stores the primitives of a 2D test case as PDF.  Lines are
// written as degenerate, outlined triangles.
func writeCase(tc testcases.TestCase, c *raster3d.Canvas, pdfPath string) error {
	var tris []scene.ProjectedTriangle
	outline := false
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			tris = append(tris, scene.ProjectedTriangle{P: [3]raster3d.Point2{op.P0, op.P1, op.P1}, Color: op.Color})
			outline = true
		case testcases.Wireframe:
			tris = append(tris, scene.ProjectedTriangle{P: op.P, Color: op.Color})
			outline = true
		case testcases.Fill:
			tris = append(tris, scene.ProjectedTriangle{P: op.P, Color: op.Color})
		case testcases.Shade:
			// PDF has no per-vertex intensity for plain paths; use the mean.
			h := (op.P[0].H + op.P[1].H + op.P[2].H) / 3
			col, _ := op.Color.Scale(h)
			tris = append(tris, scene.ProjectedTriangle{P: op.P, Color: col})
		}
	}
	opt := &pdfexport.Options{
		Background: raster3d.Black,
		Outline:    outline,
		LineWidth:  0.5,
	}
	return pdfexport.Write(pdfPath, tris, c.Extent(), opt)
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
