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

package imageio

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Tile is one labelled image of a contact sheet.
type Tile struct {
	Label string
	Image image.Image
}

// ContactSheet arranges the tiles in a grid with the given number of
// columns.  Each image is enlarged by scale and drawn above its label.
// Cells are as large as the largest tile.
func ContactSheet(tiles []Tile, columns, scale int) *image.RGBA {
	columns = max(columns, 1)
	scale = max(scale, 1)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	cellW, cellH := 0, 0
	for _, t := range tiles {
		b := t.Image.Bounds()
		labelW := font.MeasureString(face, t.Label).Ceil()
		cellW = max(cellW, b.Dx()*scale, labelW)
		cellH = max(cellH, b.Dy()*scale)
	}
	cellW += 2 * sheetMargin
	cellH += 2*sheetMargin + lineHeight

	rows := (len(tiles) + columns - 1) / columns
	sheet := image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	for i, t := range tiles {
		x0 := (i%columns)*cellW + sheetMargin
		y0 := (i/columns)*cellH + sheetMargin

		img := Upscale(t.Image, scale)
		r := img.Bounds().Add(image.Pt(x0, y0))
		draw.Draw(sheet, r, img, image.Point{}, draw.Src)

		d := &font.Drawer{
			Dst:  sheet,
			Src:  image.NewUniform(sheetText),
			Face: face,
			Dot:  fixed.P(x0, r.Max.Y+face.Metrics().Ascent.Ceil()),
		}
		d.DrawString(t.Label)
	}
	return sheet
}

const sheetMargin = 4

var (
	sheetBackground = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
	sheetText       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
