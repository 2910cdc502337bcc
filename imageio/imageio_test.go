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
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/raster3d"
)

func testCanvas() *raster3d.Canvas {
	c := raster3d.NewCanvas(3, 2)
	c.Fill(raster3d.Teal)
	_ = c.SetPixel(-1, 1, raster3d.Red)
	_ = c.SetPixel(1, 0, raster3d.Yellow)
	return c
}

func sameImage(t *testing.T, got, want image.Image) {
	t.Helper()
	if got.Bounds().Size() != want.Bounds().Size() {
		t.Fatalf("got size %v, want %v", got.Bounds().Size(), want.Bounds().Size())
	}
	gb, wb := got.Bounds(), want.Bounds()
	for y := range wb.Dy() {
		for x := range wb.Dx() {
			g := color.RGBAModel.Convert(got.At(gb.Min.X+x, gb.Min.Y+y))
			w := color.RGBAModel.Convert(want.At(wb.Min.X+x, wb.Min.Y+y))
			if g != w {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestPNGRoundTrip(t *testing.T) {
	c := testCanvas()
	buf := &bytes.Buffer{}
	if err := WritePNG(buf, c); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	sameImage(t, img, c)
}

func TestBMPRoundTrip(t *testing.T) {
	c := testCanvas()
	buf := &bytes.Buffer{}
	if err := WriteBMP(buf, c); err != nil {
		t.Fatal(err)
	}
	img, err := bmp.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	sameImage(t, img, c)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	c := testCanvas()

	for _, name := range []string{"out.png", "OUT.BMP"} {
		fname := filepath.Join(dir, name)
		if err := Save(fname, c); err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(fname)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	err := Save(filepath.Join(dir, "out.gif"), c)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("got error %v, want ErrFormat", err)
	}
}

func TestUpscale(t *testing.T) {
	c := testCanvas()
	img := Upscale(c, 3)
	if img.Bounds() != image.Rect(0, 0, 9, 6) {
		t.Fatalf("got bounds %v", img.Bounds())
	}
	for y := range 6 {
		for x := range 9 {
			want := color.RGBAModel.Convert(c.At(x/3, y/3))
			if got := img.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}

	if got := Upscale(c, 0).Bounds(); got != c.Bounds() {
		t.Errorf("factor 0 gives bounds %v", got)
	}
}

func TestContactSheet(t *testing.T) {
	a := raster3d.NewCanvas(3, 3)
	a.Fill(raster3d.Red)
	b := raster3d.NewCanvas(3, 3)
	b.Fill(raster3d.Blue)

	sheet := ContactSheet([]Tile{{"a", a}, {"b", b}}, 2, 2)

	// 7 pixel wide labels, 13 pixel high text, 4 pixel margins
	if sheet.Bounds() != image.Rect(0, 0, 30, 27) {
		t.Fatalf("got bounds %v", sheet.Bounds())
	}
	if got := sheet.RGBAAt(4, 4); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("first tile: got %v", got)
	}
	if got := sheet.RGBAAt(15+4+5, 4+5); got != (color.RGBA{B: 0xFF, A: 0xFF}) {
		t.Errorf("second tile: got %v", got)
	}
	if got := sheet.RGBAAt(0, 0); got != sheetBackground {
		t.Errorf("margin: got %v", got)
	}
}
