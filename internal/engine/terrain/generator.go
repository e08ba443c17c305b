// Package terrain generates the heightmap-driven terrain mesh.
package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
	"github.com/mosswood/verdant/internal/engine/noise"
)

// Fractal noise parameters for the height field. Chosen for rolling
// meadow terrain; the fixed seed keeps generation reproducible.
const (
	noiseFrequency   = 0.032
	noisePersistence = 0.11
	noiseLacunarity  = 11.0
)

// DefaultAmplitude is the vertical exaggeration applied on top of the
// cell scale.
const DefaultAmplitude = 8.0

// Config holds the terrain generation parameters.
type Config struct {
	Width  int // grid cells along X
	Height int // grid cells along Z
	// CellScale is the world-space size of one grid cell.
	CellScale float32
	// TexScale is the tiling period of the ground texture, in cells.
	TexScale int
	// Amplitude scales the noise height together with CellScale.
	// Zero is valid and produces flat terrain.
	Amplitude float32
	Seed      int64
}

// DefaultConfig returns the parameters used by the demo viewer.
func DefaultConfig() Config {
	return Config{
		Width:     128,
		Height:    128,
		CellScale: 1,
		TexScale:  1,
		Amplitude: DefaultAmplitude,
	}
}

func (c Config) validate() error {
	if c.Width < 1 {
		return fmt.Errorf("terrain: width must be at least 1, got %d", c.Width)
	}
	if c.Height < 1 {
		return fmt.Errorf("terrain: height must be at least 1, got %d", c.Height)
	}
	if c.CellScale <= 0 {
		return fmt.Errorf("terrain: cell scale must be positive, got %g", c.CellScale)
	}
	if c.TexScale < 1 {
		return fmt.Errorf("terrain: texture scale must be at least 1, got %d", c.TexScale)
	}
	if c.Amplitude < 0 {
		return fmt.Errorf("terrain: amplitude must not be negative, got %g", c.Amplitude)
	}
	return nil
}

// Generate builds a triangulated terrain surface whose heights come from
// seamless fractal noise. Each grid cell contributes four vertices of
// its own and two triangles, so adjacent cells never share vertices and
// the ground texture can tile per cell. The result satisfies
// len(Positions) == len(Normals) == len(UVs) == 4·Width·Height and
// len(Indices) == 6·Width·Height.
func Generate(cfg Config) (*mesh.Mesh, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	field := noise.NewFractal(noiseFrequency, noisePersistence, noiseLacunarity, cfg.Seed)
	heights := noise.BuildPlaneMap(field, noise.PlaneConfig{
		Cols:     cfg.Width + 1,
		Rows:     cfg.Height + 1,
		X1:       float64(cfg.Width),
		Y1:       float64(cfg.Height),
		Seamless: true,
	})

	g := newGrid(cfg, heights)

	cells := cfg.Width * cfg.Height
	m := &mesh.Mesh{
		Topology:  mesh.TriangleList,
		Positions: make([]mgl32.Vec3, 0, 4*cells),
		Normals:   make([]mgl32.Vec3, 0, 4*cells),
		UVs:       make([]mgl32.Vec2, 0, 4*cells),
		Indices:   make([]uint32, 0, 6*cells),
	}

	texStep := 1 / float32(cfg.TexScale)
	var base uint32
	for i := 0; i < cfg.Width; i++ {
		for j := 0; j < cfg.Height; j++ {
			// Quad corners a, b, c, d; winding keeps the faces up.
			m.Positions = append(m.Positions,
				g.at(i, j),
				g.at(i+1, j),
				g.at(i+1, j+1),
				g.at(i, j+1),
			)
			m.Normals = append(m.Normals,
				g.averageNormal(i, j),
				g.averageNormal(i+1, j),
				g.averageNormal(i+1, j+1),
				g.averageNormal(i, j+1),
			)

			u := float32(i%cfg.TexScale) * texStep
			v := float32(j%cfg.TexScale) * texStep
			m.UVs = append(m.UVs,
				mgl32.Vec2{u, v + texStep},
				mgl32.Vec2{u, v},
				mgl32.Vec2{u + texStep, v},
				mgl32.Vec2{u + texStep, v + texStep},
			)

			// Split the quad along the b-d diagonal.
			m.Indices = append(m.Indices,
				base, base+3, base+1,
				base+1, base+3, base+2,
			)
			base += 4
		}
	}
	return m, nil
}
