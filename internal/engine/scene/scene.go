// Package scene renders the generated terrain and its grass cover.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
)

// Lighting carries the shared shading parameters for one frame.
type Lighting struct {
	Direction mgl32.Vec3 // towards the light
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	CameraPos mgl32.Vec3

	FogEnabled bool
	FogNear    float32
	FogFar     float32
	FogColor   mgl32.Vec3
}

// vertexStride is the float count of one interleaved vertex:
// position(3) + normal(3) + uv(2).
const vertexStride = 8

// interleave flattens mesh attributes into the position/normal/uv
// layout both renderers upload.
func interleave(m *mesh.Mesh) []float32 {
	out := make([]float32, 0, len(m.Positions)*vertexStride)
	for i, p := range m.Positions {
		out = append(out, p.X(), p.Y(), p.Z())
		n := m.Normals[i]
		out = append(out, n.X(), n.Y(), n.Z())
		if len(m.UVs) > 0 {
			uv := m.UVs[i]
			out = append(out, uv.X(), uv.Y())
		} else {
			out = append(out, 0, 0)
		}
	}
	return out
}
