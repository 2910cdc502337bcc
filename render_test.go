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

package raster3d_test

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/imageio"
	"seehuhn.de/go/raster3d/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				// load reference mask
				refPath := filepath.Join("testdata", "reference", name+".txt")
				ref, err := os.ReadFile(refPath)
				if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				// render
				c, err := tc.Render()
				if err != nil {
					t.Fatal(err)
				}

				// compare
				if err := compareMasks(string(ref), testcases.Mask(c)); err != nil {
					writeDebugImage(name, c)
					t.Error(err)
				}
			})
		}
	}
}

func TestScenes(t *testing.T) {
	for _, sc := range testcases.Scenes {
		t.Run(sc.Name, func(t *testing.T) {
			s, err := sc.Build()
			if err != nil {
				t.Fatal(err)
			}
			c := raster3d.NewCanvas(sc.Width, sc.Height)
			if err := s.Render(c); err != nil {
				t.Fatal(err)
			}

			covered := 0
			for _, v := range c.Pix() {
				if raster3d.Color(v) != s.Background {
					covered++
				}
			}
			total := sc.Width * sc.Height
			if covered < total/50 || covered == total {
				t.Errorf("%d of %d pixels covered", covered, total)
			}
			if st := s.Stats(); st.Clipped != 0 || st.Discarded != 0 {
				t.Errorf("scene reaches outside the canvas: %+v", st)
			}
		})
	}
}

// compareMasks reports the first row where the masks differ.
func compareMasks(expected, actual string) error {
	exp := strings.Split(strings.TrimSuffix(expected, "\n"), "\n")
	act := strings.Split(strings.TrimSuffix(actual, "\n"), "\n")
	if len(exp) != len(act) {
		return fmt.Errorf("got %d rows, want %d", len(act), len(exp))
	}
	var bad []string
	for i := range exp {
		if exp[i] != act[i] {
			bad = append(bad, fmt.Sprintf("row %d: got %s, want %s", i, act[i], exp[i]))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%d rows differ\n%s", len(bad), strings.Join(bad, "\n"))
	}
	return nil
}

func writeDebugImage(name string, c *raster3d.Canvas) {
	os.MkdirAll("debug", 0755)
	imageio.Save(filepath.Join("debug", name+".png"), imageio.Upscale(c, 8))
	os.WriteFile(filepath.Join("debug", name+".txt"), []byte(testcases.Mask(c)), 0644)
}
