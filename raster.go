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

package raster3d

// Point2 is a projected vertex: integer canvas coordinates plus an
// intensity H used by shaded rendering.
type Point2 struct {
	X, Y int
	H    float64
}

// Pt returns the point (x, y) with full intensity.
func Pt(x, y int) Point2 {
	return Point2{X: x, Y: y, H: 1}
}

// PtH returns the point (x, y) with intensity h.
func PtH(x, y int, h float64) Point2 {
	return Point2{X: x, Y: y, H: h}
}

// Stats counts the work done by a Rasterizer since the last call to
// ResetStats.
type Stats struct {
	Pixels    int // pixels written to the canvas
	Clipped   int // pixels discarded because they were outside the canvas
	Saturated int // shaded pixels where at least one channel was clamped
	Discarded int // primitives dropped because they were far too large
}

// Rasterizer draws lines and triangles onto a [Canvas] by scanline
// interpolation.  Create one instance and reuse it for all primitives of
// a frame, and across frames.  Internal buffers grow as needed but never
// shrink, so no allocations happen in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip selects how primitives reaching outside the canvas are handled.
	// If Clip is false, such a primitive is rejected with a
	// *RasterizationError before any of its pixels are painted.  If Clip
	// is true, pixels outside the canvas are silently discarded.
	Clip bool

	canvas *Canvas
	stats  Stats

	// Edge buffers, indexed by y - yTop of the current triangle.
	x01, x12, x02, x012 []float64
	h01, h12, h02, h012 []float64

	// span holds the values along a single line or scanline.
	span []float64
}

// NewRasterizer returns a Rasterizer which paints onto c.
func NewRasterizer(c *Canvas) *Rasterizer {
	return &Rasterizer{canvas: c}
}

// Reset retargets the rasterizer to a different canvas and clears the
// statistics.  Internal buffers are kept.
func (r *Rasterizer) Reset(c *Canvas) {
	r.canvas = c
	r.stats = Stats{}
}

// Canvas returns the canvas the rasterizer paints onto.
func (r *Rasterizer) Canvas() *Canvas {
	return r.canvas
}

// Stats returns the counters accumulated since the last reset.
func (r *Rasterizer) Stats() Stats {
	return r.stats
}

// ResetStats sets all counters to zero.
func (r *Rasterizer) ResetStats() {
	r.stats = Stats{}
}

// DrawLine draws a line from p0 to p1, including both end points.
//
// The line steps along its dominant axis, one pixel per integer
// coordinate, and the other coordinate is interpolated and truncated.
// This leaves no gaps for any slope.
func (r *Rasterizer) DrawLine(p0, p1 Point2, col Color) error {
	if ok, err := r.admit(p0, p1, p1); !ok {
		return err
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if abs(dx) > abs(dy) {
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		r.span = AppendInterpolate(r.span[:0], p0.X, float64(p0.Y), p1.X, float64(p1.Y))
		for x := p0.X; x <= p1.X; x++ {
			r.plot(x, int(r.span[x-p0.X]), col)
		}
	} else {
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
		}
		r.span = AppendInterpolate(r.span[:0], p0.Y, float64(p0.X), p1.Y, float64(p1.X))
		for y := p0.Y; y <= p1.Y; y++ {
			r.plot(int(r.span[y-p0.Y]), y, col)
		}
	}
	return nil
}

// DrawWireframeTriangle draws the outline of a triangle, as the three
// lines p0-p1, p1-p2 and p2-p0.
func (r *Rasterizer) DrawWireframeTriangle(p0, p1, p2 Point2, col Color) error {
	if ok, err := r.admit(p0, p1, p2); !ok {
		return err
	}
	if err := r.DrawLine(p0, p1, col); err != nil {
		return err
	}
	if err := r.DrawLine(p1, p2, col); err != nil {
		return err
	}
	return r.DrawLine(p2, p0, col)
}

// DrawFilledTriangle fills a triangle with a single color.
//
// Every scanline between the top and the bottom vertex is painted from
// the left edge to the right edge, both inclusive.  The result does not
// depend on the order of the vertices.
func (r *Rasterizer) DrawFilledTriangle(p0, p1, p2 Point2, col Color) error {
	return r.fillTriangle(p0, p1, p2, col, false)
}

// DrawShadedTriangle fills a triangle, scaling col by an intensity which
// is interpolated from the H values of the three vertices, first along the
// edges and then across every scanline.  Channels saturate at 255.
func (r *Rasterizer) DrawShadedTriangle(p0, p1, p2 Point2, col Color) error {
	return r.fillTriangle(p0, p1, p2, col, true)
}

func (r *Rasterizer) fillTriangle(p0, p1, p2 Point2, col Color, shaded bool) error {
	if ok, err := r.admit(p0, p1, p2); !ok {
		return err
	}

	// Sort the vertices so that p0.Y <= p1.Y <= p2.Y.  Ties are broken by
	// x and then by intensity, so that the edges walked below do not
	// depend on the order in which the vertices were given.
	p0, p1, p2 = sort3(p0, p1, p2)

	if p0.Y == p2.Y {
		// All vertices are on one scanline.  Walking the edges would only
		// see two of them; paint the whole span from p0 to p2 instead.
		if shaded {
			r.shadeSpan(p0.Y, p0.X, p0.H, p2.X, p2.H, col)
		} else {
			r.fillSpan(p0.Y, p0.X, p2.X, col)
		}
		return nil
	}

	// x (and h) as functions of y along the three edges
	r.x01 = AppendInterpolate(r.x01[:0], p0.Y, float64(p0.X), p1.Y, float64(p1.X))
	r.x12 = AppendInterpolate(r.x12[:0], p1.Y, float64(p1.X), p2.Y, float64(p2.X))
	r.x02 = AppendInterpolate(r.x02[:0], p0.Y, float64(p0.X), p2.Y, float64(p2.X))

	// The two short edges share the value at p1.
	r.x012 = append(r.x012[:0], r.x01[:len(r.x01)-1]...)
	r.x012 = append(r.x012, r.x12...)

	if shaded {
		r.h01 = AppendInterpolate(r.h01[:0], p0.Y, p0.H, p1.Y, p1.H)
		r.h12 = AppendInterpolate(r.h12[:0], p1.Y, p1.H, p2.Y, p2.H)
		r.h02 = AppendInterpolate(r.h02[:0], p0.Y, p0.H, p2.Y, p2.H)
		r.h012 = append(r.h012[:0], r.h01[:len(r.h01)-1]...)
		r.h012 = append(r.h012, r.h12...)
	}

	// Decide which side is left by looking at the middle scanline.  On a
	// tie the long edge stays on the left.
	xLeft, xRight := r.x02, r.x012
	hLeft, hRight := r.h02, r.h012
	m := len(r.x02) / 2
	if r.x012[m] < r.x02[m] {
		xLeft, xRight = xRight, xLeft
		hLeft, hRight = hRight, hLeft
	}

	for y := p0.Y; y <= p2.Y; y++ {
		i := y - p0.Y
		xl := int(xLeft[i])
		xr := int(xRight[i])
		if shaded {
			r.shadeSpan(y, xl, hLeft[i], xr, hRight[i], col)
		} else {
			r.fillSpan(y, xl, xr, col)
		}
	}
	return nil
}

// fillSpan paints the pixels xl..xr of scanline y.
func (r *Rasterizer) fillSpan(y, xl, xr int, col Color) {
	if r.Clip {
		var clipped int
		y, xl, xr, clipped = r.clipSpan(y, xl, xr)
		r.stats.Clipped += clipped
	}
	for x := xl; x <= xr; x++ {
		r.plot(x, y, col)
	}
}

// shadeSpan paints the pixels xl..xr of scanline y, with the intensity
// going from hl to hr.
func (r *Rasterizer) shadeSpan(y, xl int, hl float64, xr int, hr float64, col Color) {
	if xr < xl {
		return
	}
	r.span = AppendInterpolate(r.span[:0], xl, hl, xr, hr)
	from, to := xl, xr
	if r.Clip {
		var clipped int
		y, from, to, clipped = r.clipSpan(y, xl, xr)
		r.stats.Clipped += clipped
	}
	for x := from; x <= to; x++ {
		c, sat := col.Scale(r.span[x-xl])
		if sat {
			r.stats.Saturated++
		}
		r.plot(x, y, c)
	}
}

// clipSpan restricts the span xl..xr of scanline y to the canvas.  If the
// scanline is outside the canvas, the returned span is empty.  The number
// of removed pixels is returned as well.
func (r *Rasterizer) clipSpan(y, xl, xr int) (int, int, int, int) {
	if xr < xl {
		return y, xl, xr, 0
	}
	n := xr - xl + 1
	xMin, yMin, xMax, yMax := r.canvas.Range()
	if y < yMin || y > yMax {
		return y, 0, -1, n
	}
	xl = max(xl, xMin)
	xr = min(xr, xMax)
	if xr < xl {
		return y, 0, -1, n
	}
	return y, xl, xr, n - (xr - xl + 1)
}

// plot writes a single pixel.  Pixels outside the canvas can only reach
// this point in Clip mode, and are counted and dropped there.
func (r *Rasterizer) plot(x, y int, col Color) {
	i, ok := r.canvas.index(x, y)
	if !ok {
		r.stats.Clipped++
		return
	}
	r.canvas.pix[i] = uint32(col)
	r.stats.Pixels++
}

// admit decides whether a primitive with the given vertices can be drawn.
// All pixels of a line or triangle lie in the bounding box of its
// vertices, so checking the vertices is enough to guarantee that nothing
// is painted outside the canvas.
func (r *Rasterizer) admit(p0, p1, p2 Point2) (bool, error) {
	if !r.Clip {
		for _, p := range [3]Point2{p0, p1, p2} {
			if !r.canvas.Contains(p.X, p.Y) {
				return false, &RasterizationError{
					X: p.X, Y: p.Y,
					Width: r.canvas.width, Height: r.canvas.height,
				}
			}
		}
		return true, nil
	}

	xMin := min(p0.X, p1.X, p2.X)
	xMax := max(p0.X, p1.X, p2.X)
	yMin := min(p0.Y, p1.Y, p2.Y)
	yMax := max(p0.Y, p1.Y, p2.Y)
	if xMax-xMin > maxSpan || yMax-yMin > maxSpan {
		r.stats.Discarded++
		return false, nil
	}
	return true, nil
}

// sort3 orders three points by y, then by x, then by intensity.
func sort3(p0, p1, p2 Point2) (Point2, Point2, Point2) {
	if less(p1, p0) {
		p0, p1 = p1, p0
	}
	if less(p2, p0) {
		p0, p2 = p2, p0
	}
	if less(p2, p1) {
		p1, p2 = p2, p1
	}
	return p0, p1, p2
}

func less(a, b Point2) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.H < b.H
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// maxSpan is the largest extent, in pixels along either axis, of a
// primitive accepted in Clip mode.  Larger primitives come from vertices
// projected from very close to the camera plane; their interpolation
// buffers would grow without bound, so they are dropped.
const maxSpan = 1 << 16
