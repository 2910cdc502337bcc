// Command export writes test case definitions to JSON for the Python reference generator.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Ops    []jsonOp `json:"ops"`
}

type jsonOp struct {
	Op    string       `json:"op"`
	Pts   [][3]float64 `json:"pts"`
	Color string       `json:"color"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			jtc.Ops = append(jtc.Ops, newOp("line", op.Color, op.P0, op.P1))
		case testcases.Wireframe:
			jtc.Ops = append(jtc.Ops, newOp("wireframe", op.Color, op.P[:]...))
		case testcases.Fill:
			jtc.Ops = append(jtc.Ops, newOp("fill", op.Color, op.P[:]...))
		case testcases.Shade:
			jtc.Ops = append(jtc.Ops, newOp("shade", op.Color, op.P[:]...))
		}
	}
	return jtc
}

func newOp(name string, col raster3d.Color, pts ...raster3d.Point2) jsonOp {
	op := jsonOp{
		Op:    name,
		Pts:   make([][3]float64, len(pts)),
		Color: fmt.Sprintf("%06x", uint32(col)),
	}
	for i, p := range pts {
		op.Pts[i] = [3]float64{float64(p.X), float64(p.Y), p.H}
	}
	return op
}
