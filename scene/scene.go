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

// Package scene implements the transform pipeline from models in world
// space, through the camera, to triangles on a [raster3d.Canvas].
package scene

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/matrix"
	"seehuhn.de/go/raster3d/vec3"
)

// Mode selects how triangles are drawn.
type Mode int

// These are the supported render modes.
const (
	Wireframe Mode = iota
	Filled
	Shaded
)

func (m Mode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case Filled:
		return "filled"
	case Shaded:
		return "shaded"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the name of a render mode, as returned by
// [Mode.String], back to a Mode.
func ParseMode(name string) (Mode, error) {
	for m := Wireframe; m <= Shaded; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("scene: unknown render mode %q", name)
}

// Scene holds the models, the instances placing them in the world, and
// the camera.  Exported fields can be changed freely between frames.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	Camera Camera

	// ViewportWidth and ViewportHeight give the size of the viewport on
	// the projection plane, in world units.  The viewport is mapped onto
	// the full canvas.
	ViewportWidth, ViewportHeight float64

	// Distance is the distance from the camera to the projection plane.
	Distance float64

	// Background is the color every frame starts from.
	Background raster3d.Color

	Mode Mode

	// Clip makes triangles reaching outside the canvas be clipped, rather
	// than failing the frame.
	Clip bool

	// Cull makes triangles with a vertex at or behind the camera be
	// skipped, rather than failing the frame.
	Cull bool

	// DepthSort makes the triangles of every instance be painted from the
	// back to the front, by the mean depth of their vertices.  Instances
	// are still painted in order.
	DepthSort bool

	models    []*Model
	instances []Instance
	alive     []bool

	raster *raster3d.Rasterizer
	batch  []batchItem
	pts    []raster3d.Point2
	ok     []bool
	depth  []float64 // camera space z of every vertex in pts
	draw   []int     // model triangle indices, for triangles which will be drawn
}

// batchItem is a model, projected and ready to be painted.
type batchItem struct {
	model  *Model
	offset int // index of the first vertex in pts
	tri    int // index of the first triangle in draw
	nTri   int
}

// New returns an empty scene with a unit viewport at distance 1, a camera
// at the origin, white background and filled triangles.
func New() *Scene {
	return &Scene{
		Camera:         NewCamera(vec3.Zero),
		ViewportWidth:  1,
		ViewportHeight: 1,
		Distance:       1,
		Background:     raster3d.White,
		Mode:           Filled,
	}
}

// AddModel stores m in the scene's model table.
func (s *Scene) AddModel(m *Model) (ModelID, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	s.models = append(s.models, m)
	return ModelID(len(s.models) - 1), nil
}

// Model returns the model with the given ID.
func (s *Scene) Model(id ModelID) (*Model, error) {
	if id < 0 || int(id) >= len(s.models) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, id)
	}
	return s.models[id], nil
}

// AddInstance places a model in the scene.  Instances are painted in the
// order they were added, so later instances cover earlier ones.
func (s *Scene) AddInstance(model ModelID, transform matrix.Matrix4) (InstanceID, error) {
	if _, err := s.Model(model); err != nil {
		return 0, err
	}
	s.instances = append(s.instances, Instance{Model: model, Transform: transform})
	s.alive = append(s.alive, true)
	return InstanceID(len(s.instances) - 1), nil
}

// Instance returns a pointer to the instance with the given ID.  The
// instance can be modified through the pointer until it is removed.
func (s *Scene) Instance(id InstanceID) (*Instance, error) {
	if id < 0 || int(id) >= len(s.instances) || !s.alive[id] {
		return nil, fmt.Errorf("%w: %d", ErrUnknownInstance, id)
	}
	return &s.instances[id], nil
}

// SetTransform replaces the model transform of an instance.
func (s *Scene) SetTransform(id InstanceID, transform matrix.Matrix4) error {
	inst, err := s.Instance(id)
	if err != nil {
		return err
	}
	inst.Transform = transform
	return nil
}

// SetVisible shows or hides an instance.
func (s *Scene) SetVisible(id InstanceID, visible bool) error {
	inst, err := s.Instance(id)
	if err != nil {
		return err
	}
	inst.Hidden = !visible
	return nil
}

// RemoveInstance deletes an instance from the scene.  The IDs of the
// other instances stay valid.
func (s *Scene) RemoveInstance(id InstanceID) error {
	if _, err := s.Instance(id); err != nil {
		return err
	}
	s.alive[id] = false
	s.instances[id] = Instance{}
	return nil
}

// NumInstances returns the number of live instances.
func (s *Scene) NumInstances() int {
	n := 0
	for _, ok := range s.alive {
		if ok {
			n++
		}
	}
	return n
}

// Stats returns the rasterizer counters of the most recent frame.
func (s *Scene) Stats() raster3d.Stats {
	if s.raster == nil {
		return raster3d.Stats{}
	}
	return s.raster.Stats()
}

// ViewportToCanvas maps a point on the projection plane to canvas pixel
// coordinates.  Fractional results are truncated toward zero.
func (s *Scene) ViewportToCanvas(c *raster3d.Canvas, x, y float64) raster3d.Point2 {
	cx := x * float64(c.Width()) / s.ViewportWidth
	cy := y * float64(c.Height()) / s.ViewportHeight
	return raster3d.Pt(int(cx), int(cy))
}

// ProjectVertex maps a point in camera coordinates to canvas pixel
// coordinates, using perspective division onto the projection plane.
// Points with z <= 0 cannot be projected; for these a *ProjectionError is
// returned.
func (s *Scene) ProjectVertex(c *raster3d.Canvas, v vec3.Vec3) (raster3d.Point2, error) {
	if !(v.Z > 0) {
		return raster3d.Point2{}, &ProjectionError{Vertex: -1, Pos: v}
	}
	x := v.X * s.Distance / v.Z
	y := v.Y * s.Distance / v.Z
	cx := x * float64(c.Width()) / s.ViewportWidth
	cy := y * float64(c.Height()) / s.ViewportHeight
	if !representable(cx) || !representable(cy) {
		return raster3d.Point2{}, &ProjectionError{Vertex: -1, Pos: v}
	}
	return s.ViewportToCanvas(c, x, y), nil
}

// representable reports whether x can be converted to a pixel coordinate.
func representable(x float64) bool {
	return !math.IsNaN(x) && math.Abs(x) < maxCoord
}

// RenderModel draws a single model onto c, on top of the existing canvas
// contents.  The transform maps model coordinates to camera coordinates.
func (s *Scene) RenderModel(c *raster3d.Canvas, m *Model, transform matrix.Matrix4) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.resetBatch()
	if err := s.prepare(c, m, transform); err != nil {
		return err
	}
	s.startPainting(c)
	return s.paint()
}

// Render draws the scene as seen by s.Camera.
func (s *Scene) Render(c *raster3d.Canvas) error {
	return s.RenderFrame(s.Camera, c)
}

// RenderFrame draws the scene as seen by cam.  The canvas is cleared to
// the background color first, and every visible instance is painted in
// order.
//
// All instances are projected before the canvas is touched: if an error
// is returned, the canvas is unchanged.
func (s *Scene) RenderFrame(cam Camera, c *raster3d.Canvas) error {
	if err := s.prepareFrame(cam, c); err != nil {
		return err
	}

	c.Fill(s.Background)
	s.startPainting(c)
	if err := s.paint(); err != nil {
		return err
	}

	st := s.raster.Stats()
	raster3d.Logger().Debug("frame rendered",
		slog.Int("instances", len(s.batch)),
		slog.Int("triangles", len(s.draw)),
		slog.String("mode", s.Mode.String()),
		slog.Int("pixels", st.Pixels),
		slog.Int("clipped", st.Clipped),
		slog.Int("saturated", st.Saturated),
		slog.Int("discarded", st.Discarded))
	return nil
}

// ProjectedTriangle is a triangle on the canvas, as it would be painted.
type ProjectedTriangle struct {
	P     [3]raster3d.Point2
	Color raster3d.Color
}

// Project returns the triangles of the frame seen by cam, in the order
// [Scene.RenderFrame] would paint them.  The canvas only provides the
// pixel grid and is not modified.  In [Shaded] mode each triangle color
// is scaled by the mean intensity of its vertices.
func (s *Scene) Project(cam Camera, c *raster3d.Canvas) ([]ProjectedTriangle, error) {
	if err := s.prepareFrame(cam, c); err != nil {
		return nil, err
	}
	res := make([]ProjectedTriangle, 0, len(s.draw))
	for _, item := range s.batch {
		pts := s.pts[item.offset:]
		for _, i := range s.draw[item.tri : item.tri+item.nTri] {
			tri := item.model.Triangles[i]
			p := [3]raster3d.Point2{pts[tri.V[0]], pts[tri.V[1]], pts[tri.V[2]]}
			col := tri.Color
			if s.Mode == Shaded {
				col, _ = col.Scale((p[0].H + p[1].H + p[2].H) / 3)
			}
			res = append(res, ProjectedTriangle{P: p, Color: col})
		}
	}
	return res, nil
}

// prepareFrame projects all visible instances.
func (s *Scene) prepareFrame(cam Camera, c *raster3d.Canvas) error {
	camT := cam.Transform()

	s.resetBatch()
	for id, inst := range s.instances {
		if !s.alive[id] || inst.Hidden {
			continue
		}
		m, err := s.Model(inst.Model)
		if err != nil {
			return err
		}
		if err := s.prepare(c, m, camT.Mul(inst.Transform)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) resetBatch() {
	s.batch = s.batch[:0]
	s.pts = s.pts[:0]
	s.ok = s.ok[:0]
	s.depth = s.depth[:0]
	s.draw = s.draw[:0]
}

// prepare projects all vertices of m and selects the triangles to draw.
// Nothing is painted yet.
func (s *Scene) prepare(c *raster3d.Canvas, m *Model, transform matrix.Matrix4) error {
	item := batchItem{model: m, offset: len(s.pts), tri: len(s.draw)}

	for i, v := range m.Vertices {
		p := transform.Apply(v)
		q, err := s.ProjectVertex(c, p)
		if err != nil {
			if !s.Cull {
				return &ProjectionError{Model: m.Name, Vertex: i, Pos: p}
			}
			s.pts = append(s.pts, raster3d.Point2{})
			s.ok = append(s.ok, false)
			s.depth = append(s.depth, p.Z)
			continue
		}
		if s.Mode == Shaded {
			q.H = m.shade(i)
		}
		s.pts = append(s.pts, q)
		s.ok = append(s.ok, true)
		s.depth = append(s.depth, p.Z)
	}

	culled := 0
	for i, tri := range m.Triangles {
		a, b, d := item.offset+tri.V[0], item.offset+tri.V[1], item.offset+tri.V[2]
		if !s.ok[a] || !s.ok[b] || !s.ok[d] {
			culled++
			continue
		}
		if !s.Clip {
			for _, k := range tri.V {
				p := s.pts[item.offset+k]
				if !c.Contains(p.X, p.Y) {
					return fmt.Errorf("model %q vertex %d: %w", m.Name, k,
						&raster3d.RasterizationError{
							X: p.X, Y: p.Y,
							Width: c.Width(), Height: c.Height(),
						})
				}
			}
		}
		s.draw = append(s.draw, i)
	}
	if culled > 0 {
		raster3d.Logger().Debug("triangles culled",
			slog.String("model", m.Name),
			slog.Int("culled", culled),
			slog.Int("total", len(m.Triangles)))
	}

	item.nTri = len(s.draw) - item.tri
	if s.DepthSort {
		depth := s.depth[item.offset:]
		key := func(i int) float64 {
			v := m.Triangles[i].V
			return depth[v[0]] + depth[v[1]] + depth[v[2]]
		}
		slices.SortStableFunc(s.draw[item.tri:], func(a, b int) int {
			return cmp.Compare(key(b), key(a))
		})
	}
	s.batch = append(s.batch, item)
	return nil
}

func (s *Scene) startPainting(c *raster3d.Canvas) {
	if s.raster == nil {
		s.raster = raster3d.NewRasterizer(c)
	}
	s.raster.Reset(c)
	s.raster.Clip = s.Clip
}

// paint draws all prepared triangles.  The vertices have been checked in
// prepare, so the rasterizer only fails if the batch is inconsistent with
// the canvas.
func (s *Scene) paint() error {
	for _, item := range s.batch {
		pts := s.pts[item.offset:]
		for _, i := range s.draw[item.tri : item.tri+item.nTri] {
			tri := item.model.Triangles[i]
			p0, p1, p2 := pts[tri.V[0]], pts[tri.V[1]], pts[tri.V[2]]
			var err error
			switch s.Mode {
			case Wireframe:
				err = s.raster.DrawWireframeTriangle(p0, p1, p2, tri.Color)
			case Shaded:
				err = s.raster.DrawShadedTriangle(p0, p1, p2, tri.Color)
			default:
				err = s.raster.DrawFilledTriangle(p0, p1, p2, tri.Color)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// maxCoord bounds the canvas coordinates of projected vertices.  Vertices
// projecting further out come from points almost on the camera plane.
const maxCoord = 1 << 30
