// Command terragen generates a terrain mesh headlessly, exports it as
// a Wavefront OBJ file and optionally writes the grass scatter points
// it would carry.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
	"github.com/mosswood/verdant/internal/engine/sampling"
	"github.com/mosswood/verdant/internal/engine/terrain"
	"github.com/mosswood/verdant/pkg/wavefront"
)

func main() {
	var (
		width     = flag.Int("width", 128, "terrain width in cells")
		height    = flag.Int("height", 128, "terrain height in cells")
		cellScale = flag.Float64("cell", 1, "world size of one cell")
		texScale  = flag.Int("tex", 1, "cells covered by one texture tile")
		amplitude = flag.Float64("amplitude", terrain.DefaultAmplitude, "height amplitude")
		seed      = flag.Int64("seed", 0, "noise seed")
		out       = flag.String("o", "terrain.obj", "output OBJ file")
		points    = flag.String("points", "", "also write grass scatter points to this file")
		density   = flag.Float64("density", 16, "scatter points per surface unit")
		threshold = flag.Float64("threshold", 0.75, "minimum up-facing dot product for scatter")
	)
	flag.Usage = usage
	flag.Parse()

	cfg := terrain.Config{
		Width:     *width,
		Height:    *height,
		CellScale: float32(*cellScale),
		TexScale:  *texScale,
		Amplitude: float32(*amplitude),
		Seed:      *seed,
	}

	m, err := terrain.Generate(cfg)
	if err != nil {
		fail("generate: %v", err)
	}
	fmt.Printf("generated %dx%d terrain: %d vertices, %d triangles\n",
		cfg.Width, cfg.Height, len(m.Positions), m.TriangleCount())

	if err := writeOBJ(*out, m); err != nil {
		fail("%v", err)
	}
	fmt.Printf("wrote %s\n", *out)

	if *points != "" {
		sampler := sampling.UniformSurfaceSampler{
			Density:        float32(*density),
			SlopeThreshold: float32(*threshold),
			Rand:           rand.New(rand.NewSource(cfg.Seed)),
		}
		pts := sampler.Sample(m)
		if err := writePoints(*points, pts); err != nil {
			fail("%v", err)
		}
		fmt.Printf("wrote %d scatter points to %s\n", len(pts), *points)
	}
}

func writeOBJ(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return wavefront.Encode(f, m, objName(path))
}

func writePoints(path string, pts []mgl32.Vec3) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range pts {
		fmt.Fprintf(w, "%g %g %g\n", p.X(), p.Y(), p.Z())
	}
	return w.Flush()
}

func objName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "Generates a fractal terrain mesh and writes it as Wavefront OBJ.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
