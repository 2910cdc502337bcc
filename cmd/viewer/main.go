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

// Command viewer shows one of the built-in scenes in a window and lets
// the user walk around it.
//
// Keys: W/S or the arrow keys move forward and back, A/D step sideways,
// Q/E turn, 1/2/3 select wireframe, filled or shaded rendering, H
// toggles the status line and Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/scene"
	"seehuhn.de/go/raster3d/testcases"
	"seehuhn.de/go/raster3d/vec3"
)

const (
	stepSize = 0.05 // world units per tick
	turnStep = 0.02 // radians per tick
)

type config struct {
	Scene string
	Scale int
}

type viewer struct {
	name   string
	scene  *scene.Scene
	canvas *raster3d.Canvas
	buf    []byte
	frame  *ebiten.Image
	hud    bool
	err    error
}

func main() {
	var cfg config
	verbose := flag.Bool("v", false, "verbose logging")
	flag.StringVar(&cfg.Scene, "scene", "cube_pair", "scene to show")
	flag.IntVar(&cfg.Scale, "scale", 1, "window scale factor")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	raster3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "viewer:", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var sc *testcases.SceneCase
	for i := range testcases.Scenes {
		if testcases.Scenes[i].Name == cfg.Scene {
			sc = &testcases.Scenes[i]
		}
	}
	if sc == nil {
		return fmt.Errorf("unknown scene %q", cfg.Scene)
	}
	s, err := sc.Build()
	if err != nil {
		return err
	}
	s.Cull = true
	s.Clip = true

	v := &viewer{
		name:   sc.Name,
		scene:  s,
		canvas: raster3d.NewCanvas(sc.Width, sc.Height),
		buf:    make([]byte, 4*sc.Width*sc.Height),
		frame:  ebiten.NewImage(sc.Width, sc.Height),
		hud:    true,
	}

	scale := max(cfg.Scale, 1)
	ebiten.SetWindowTitle("raster3d: " + sc.Name)
	ebiten.SetWindowSize(sc.Width*scale, sc.Height*scale)
	ebiten.SetTPS(60)
	err = ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return err
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	cam := &v.scene.Camera
	var d vec3.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		d.Z += stepSize
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		d.Z -= stepSize
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		d.X -= stepSize
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		d.X += stepSize
	}
	if d != (vec3.Vec3{}) {
		cam.Move(d)
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam.Turn(turnStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam.Turn(-turnStep)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		v.scene.Mode = scene.Wireframe
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		v.scene.Mode = scene.Filled
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		v.scene.Mode = scene.Shaded
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.hud = !v.hud
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	// A failed frame leaves the canvas untouched, so the previous image
	// stays on screen.
	err := v.scene.Render(v.canvas)
	if err != nil && (v.err == nil || err.Error() != v.err.Error()) {
		raster3d.Logger().Warn("frame not rendered", slog.Any("error", err))
	}
	v.err = err

	v.canvas.WriteRGBA(v.buf)
	if v.hud {
		v.drawStatus()
	}
	v.frame.WritePixels(v.buf)
	screen.DrawImage(v.frame, &ebiten.DrawImageOptions{})
}

// drawStatus prints the current mode and position into the top-left
// corner of the frame buffer.
func (v *viewer) drawStatus() {
	w, h := v.canvas.Width(), v.canvas.Height()
	dst := &image.RGBA{Pix: v.buf, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}

	pos := v.scene.Camera.Position
	msg := fmt.Sprintf("%s  %s  (%.1f, %.1f, %.1f)", v.name, v.scene.Mode, pos.X, pos.Y, pos.Z)
	if v.err != nil {
		msg += "  [out of range]"
	}
	ink := image.Black
	if bg := v.scene.Background; int(bg.R())+int(bg.G())+int(bg.B()) < 384 {
		ink = image.White
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  ink,
		Face: face,
		Dot:  fixed.P(4, face.Ascent+4),
	}
	d.DrawString(msg)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.canvas.Width(), v.canvas.Height()
}
