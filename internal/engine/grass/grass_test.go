package grass

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
)

func flatGround() *mesh.Mesh {
	up := mgl32.Vec3{0, 1, 0}
	return &mesh.Mesh{
		Topology: mesh.TriangleList,
		Positions: []mgl32.Vec3{
			{0, 0, 0}, {1, 0, 0}, {1, 0, 1},
			{0, 0, 0}, {1, 0, 1}, {0, 0, 1},
		},
		Normals: []mgl32.Vec3{up, up, up, up, up, up},
	}
}

func TestScatter(t *testing.T) {
	f := Field{
		Mesh:           flatGround(),
		Density:        5,
		SlopeThreshold: DefaultSlopeThreshold,
		Rand:           rand.New(rand.NewSource(1)),
	}

	instances := f.Scatter(mgl32.Ident4())
	if len(instances) == 0 {
		t.Fatal("Scatter() spawned nothing on flat ground")
	}
	for i, in := range instances {
		if in.Scale != 1 {
			t.Errorf("instance %d scale = %g, want 1", i, in.Scale)
		}
		if in.Position.Y() != 0 {
			t.Errorf("instance %d left the surface: %v", i, in.Position)
		}
	}
}

func TestScatterAppliesTransform(t *testing.T) {
	scatter := func(transform mgl32.Mat4) []Instance {
		f := Field{
			Mesh:           flatGround(),
			Density:        5,
			SlopeThreshold: DefaultSlopeThreshold,
			Rand:           rand.New(rand.NewSource(2)),
		}
		return f.Scatter(transform)
	}

	base := scatter(mgl32.Ident4())
	moved := scatter(mgl32.Translate3D(10, 1, -4))
	if len(base) != len(moved) {
		t.Fatalf("transform changed the instance count: %d vs %d", len(base), len(moved))
	}

	offset := mgl32.Vec3{10, 1, -4}
	for i := range base {
		want := base[i].Position.Add(offset)
		got := moved[i].Position
		if got.Sub(want).Len() > 1e-5 {
			t.Errorf("instance %d = %v, want %v", i, got, want)
		}
	}
}

func TestScatterEmptyCases(t *testing.T) {
	tests := []struct {
		name  string
		field Field
	}{
		{"nil mesh", Field{Density: DefaultDensity, SlopeThreshold: DefaultSlopeThreshold}},
		{
			"unsupported topology",
			Field{
				Mesh: func() *mesh.Mesh {
					m := flatGround()
					m.Topology = mesh.TriangleStrip
					return m
				}(),
				Density:        DefaultDensity,
				SlopeThreshold: DefaultSlopeThreshold,
			},
		},
		{
			"density rounds to zero",
			Field{Mesh: flatGround(), Density: 0.1, SlopeThreshold: DefaultSlopeThreshold},
		},
		{
			"everything too steep",
			Field{Mesh: flatGround(), Density: DefaultDensity, SlopeThreshold: 1.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Scatter(mgl32.Ident4()); got != nil {
				t.Errorf("Scatter() = %d instances, want none", len(got))
			}
		})
	}
}

func TestBlade(t *testing.T) {
	m := Blade(0.6, 0.08)

	if err := m.Validate(); err != nil {
		t.Fatalf("blade mesh invalid: %v", err)
	}
	if got := len(m.Positions); got != 8 {
		t.Errorf("got %d vertices, want 8 (two quads)", got)
	}
	if got := len(m.Indices); got != 12 {
		t.Errorf("got %d indices, want 12", got)
	}
	if got := m.TriangleCount(); got != 4 {
		t.Errorf("TriangleCount() = %d, want 4", got)
	}

	b := m.Bounds()
	if b.Min.Y() != 0 {
		t.Errorf("blade root at y = %g, want 0", b.Min.Y())
	}
	if math.Abs(float64(b.Max.Y()-0.6)) > 1e-6 {
		t.Errorf("blade tip at y = %g, want 0.6", b.Max.Y())
	}
	if math.Abs(float64(b.Max.X()-0.04)) > 1e-6 {
		t.Errorf("blade half-width = %g, want 0.04", b.Max.X())
	}
}
