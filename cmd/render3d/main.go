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

// Command render3d renders one of the built-in scenes to an image file.
//
// The output format is chosen by the file name extension: ".png" and
// ".bmp" give raster images, ".pdf" gives vector output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/imageio"
	"seehuhn.de/go/raster3d/pdfexport"
	"seehuhn.de/go/raster3d/scene"
	"seehuhn.de/go/raster3d/testcases"
)

type config struct {
	Scene   string
	Output  string
	Width   int // 0 means the default size of the scene
	Height  int
	Mode    string // empty means the default mode of the scene
	Scale   int
	Clip    bool
	Cull    bool
	Verbose bool
}

var errUnknownScene = errors.New("unknown scene")

func main() {
	var cfg config
	var list bool
	flag.StringVar(&cfg.Scene, "scene", "cube_pair", "scene to render")
	flag.StringVar(&cfg.Output, "o", "out.png", "output file (.png, .bmp or .pdf)")
	flag.IntVar(&cfg.Width, "width", 0, "canvas width (0 = scene default)")
	flag.IntVar(&cfg.Height, "height", 0, "canvas height (0 = scene default)")
	flag.StringVar(&cfg.Mode, "mode", "", "render mode: wireframe, filled or shaded")
	flag.IntVar(&cfg.Scale, "scale", 1, "enlarge raster output by this factor")
	flag.BoolVar(&cfg.Clip, "clip", false, "clip triangles at the canvas edges")
	flag.BoolVar(&cfg.Cull, "cull", false, "skip triangles behind the camera")
	flag.BoolVar(&cfg.Verbose, "v", false, "verbose logging")
	flag.BoolVar(&list, "list", false, "list the available scenes and exit")
	flag.Parse()

	if list {
		for _, sc := range testcases.Scenes {
			fmt.Printf("%-12s %dx%d\n", sc.Name, sc.Width, sc.Height)
		}
		return
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	raster3d.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, "render3d:", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	var sc *testcases.SceneCase
	for i := range testcases.Scenes {
		if testcases.Scenes[i].Name == cfg.Scene {
			sc = &testcases.Scenes[i]
		}
	}
	if sc == nil {
		return fmt.Errorf("%w %q", errUnknownScene, cfg.Scene)
	}

	s, err := sc.Build()
	if err != nil {
		return fmt.Errorf("building %s: %w", sc.Name, err)
	}
	if cfg.Mode != "" {
		s.Mode, err = scene.ParseMode(cfg.Mode)
		if err != nil {
			return err
		}
	}
	s.Clip = cfg.Clip
	s.Cull = cfg.Cull

	width, height := sc.Width, sc.Height
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}
	c := raster3d.NewCanvas(width, height)

	if strings.EqualFold(filepath.Ext(cfg.Output), ".pdf") {
		err = pdfexport.WriteFrame(cfg.Output, s, s.Camera, c)
	} else {
		err = s.Render(c)
		if err == nil {
			err = imageio.Save(cfg.Output, imageio.Upscale(c, cfg.Scale))
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", sc.Name, err)
	}

	st := s.Stats()
	logger.Info("scene rendered",
		slog.String("scene", sc.Name),
		slog.String("mode", s.Mode.String()),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("pixels", st.Pixels),
		slog.String("output", cfg.Output))
	return nil
}
