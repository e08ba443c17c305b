package terrain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
)

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"single cell", 1, 1},
		{"square", 4, 4},
		{"wide", 8, 3},
		{"tall", 2, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Generate(Config{
				Width: tt.width, Height: tt.height,
				CellScale: 1, TexScale: 1, Amplitude: DefaultAmplitude,
			})
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}

			cells := tt.width * tt.height
			if got := len(m.Positions); got != 4*cells {
				t.Errorf("got %d positions, want %d", got, 4*cells)
			}
			if got := len(m.Normals); got != 4*cells {
				t.Errorf("got %d normals, want %d", got, 4*cells)
			}
			if got := len(m.UVs); got != 4*cells {
				t.Errorf("got %d uvs, want %d", got, 4*cells)
			}
			if got := len(m.Indices); got != 6*cells {
				t.Errorf("got %d indices, want %d", got, 6*cells)
			}
			if m.Topology != mesh.TriangleList {
				t.Errorf("topology = %s, want triangle-list", m.Topology)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("generated mesh invalid: %v", err)
			}
		})
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{Width: 0, Height: 4, CellScale: 1, TexScale: 1}},
		{"negative height", Config{Width: 4, Height: -1, CellScale: 1, TexScale: 1}},
		{"zero cell scale", Config{Width: 4, Height: 4, CellScale: 0, TexScale: 1}},
		{"zero tex scale", Config{Width: 4, Height: 4, CellScale: 1, TexScale: 0}},
		{"negative amplitude", Config{Width: 4, Height: 4, CellScale: 1, TexScale: 1, Amplitude: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.cfg); err == nil {
				t.Error("Generate() accepted invalid config")
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Seed = 99

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("vertex %d differs between runs: %v vs %v", i, a.Positions[i], b.Positions[i])
		}
	}
}

func TestGenerateNormalsAreUnit(t *testing.T) {
	m, err := Generate(Config{
		Width: 16, Height: 16,
		CellScale: 1, TexScale: 1, Amplitude: DefaultAmplitude, Seed: 3,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i, n := range m.Normals {
		l := n.Len()
		if math.Abs(float64(l)-1) > 1e-4 {
			t.Fatalf("normal %d has length %g, want 1", i, l)
		}
	}
}

func TestGenerateFlatTerrain(t *testing.T) {
	m, err := Generate(Config{
		Width: 4, Height: 4,
		CellScale: 2, TexScale: 1, Amplitude: 0,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	up := mgl32.Vec3{0, 1, 0}
	for i, p := range m.Positions {
		if p.Y() != 0 {
			t.Errorf("vertex %d at height %g, want 0", i, p.Y())
		}
		if m.Normals[i] != up {
			t.Errorf("normal %d = %v, want %v", i, m.Normals[i], up)
		}
	}
}

func TestGenerateCellLayout(t *testing.T) {
	m, err := Generate(Config{
		Width: 1, Height: 1,
		CellScale: 3, TexScale: 1, Amplitude: 0,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	wantPositions := []mgl32.Vec3{
		{0, 0, 0}, {3, 0, 0}, {3, 0, 3}, {0, 0, 3},
	}
	for i, want := range wantPositions {
		if m.Positions[i] != want {
			t.Errorf("position %d = %v, want %v", i, m.Positions[i], want)
		}
	}

	wantUVs := []mgl32.Vec2{
		{0, 1}, {0, 0}, {1, 0}, {1, 1},
	}
	for i, want := range wantUVs {
		if m.UVs[i] != want {
			t.Errorf("uv %d = %v, want %v", i, m.UVs[i], want)
		}
	}

	wantIndices := []uint32{0, 3, 1, 1, 3, 2}
	for i, want := range wantIndices {
		if m.Indices[i] != want {
			t.Errorf("index %d = %d, want %d", i, m.Indices[i], want)
		}
	}
}

func TestGenerateSeamlessHeights(t *testing.T) {
	const size = 16
	m, err := Generate(Config{
		Width: size, Height: size,
		CellScale: 1, TexScale: 1, Amplitude: DefaultAmplitude, Seed: 5,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Heights at opposite borders must match so two maps can tile.
	edge := make(map[float32]float32) // z -> height at x=0
	for _, p := range m.Positions {
		if p.X() == 0 {
			edge[p.Z()] = p.Y()
		}
	}
	for _, p := range m.Positions {
		if p.X() == size {
			want, ok := edge[p.Z()]
			if !ok {
				continue
			}
			if math.Abs(float64(p.Y()-want)) > 1e-5 {
				t.Fatalf("height mismatch at z=%g: x=0 gives %g, x=%d gives %g",
					p.Z(), want, size, p.Y())
			}
		}
	}
}
