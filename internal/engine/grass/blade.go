package grass

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
)

// Blade builds the canonical grass blade mesh shared by every instance:
// two tapered quads crossed at 90°, pivot at the root so instances sit
// on the sampled surface point. The tip is half the root width.
func Blade(height, width float32) *mesh.Mesh {
	hw := width / 2
	tip := width / 4

	m := &mesh.Mesh{Topology: mesh.TriangleList}

	// Quad in the XY plane, facing +Z.
	appendQuad(m,
		mgl32.Vec3{-hw, 0, 0},
		mgl32.Vec3{hw, 0, 0},
		mgl32.Vec3{tip, height, 0},
		mgl32.Vec3{-tip, height, 0},
		mgl32.Vec3{0, 0, 1},
	)
	// Quad in the ZY plane, facing +X.
	appendQuad(m,
		mgl32.Vec3{0, 0, hw},
		mgl32.Vec3{0, 0, -hw},
		mgl32.Vec3{0, height, -tip},
		mgl32.Vec3{0, height, tip},
		mgl32.Vec3{1, 0, 0},
	)
	return m
}

func appendQuad(m *mesh.Mesh, a, b, c, d, normal mgl32.Vec3) {
	base := uint32(len(m.Positions))
	m.Positions = append(m.Positions, a, b, c, d)
	m.Normals = append(m.Normals, normal, normal, normal, normal)
	m.UVs = append(m.UVs,
		mgl32.Vec2{0, 1},
		mgl32.Vec2{1, 1},
		mgl32.Vec2{1, 0},
		mgl32.Vec2{0, 0},
	)
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
