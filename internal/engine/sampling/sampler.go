// Package sampling scatters uniformly distributed points across mesh
// surfaces for instance placement.
package sampling

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
)

// MeshSampler produces a point set over a mesh surface.
type MeshSampler interface {
	Sample(m *mesh.Mesh) []mgl32.Vec3
}

// UniformSurfaceSampler distributes points uniformly over the
// upward-facing part of a mesh, weighted by per-triangle area.
//
// Only triangle-list meshes yield points. Triangle-strip sampling is a
// declared capability without an implementation yet; strips, lines and
// points all produce an empty result.
type UniformSurfaceSampler struct {
	// Density is the target point count per unit of surface weight.
	Density float32
	// SlopeThreshold discards triangles whose averaged face normal has
	// a vertical component below it: 0.75 keeps gentle meadow slopes,
	// -1 accepts every face including cliffs.
	SlopeThreshold float32
	// Rand drives the random draws. Nil falls back to a time-seeded
	// generator; inject a fixed-seed generator for reproducible output.
	// Concurrent samplers must not share one generator.
	Rand *rand.Rand
}

type triangle struct {
	a, b, c mgl32.Vec3
}

var worldUp = mgl32.Vec3{0, 1, 0}

// Sample dispatches on the mesh topology.
func (s *UniformSurfaceSampler) Sample(m *mesh.Mesh) []mgl32.Vec3 {
	if m == nil {
		return nil
	}
	switch m.Topology {
	case mesh.TriangleList:
		return s.sampleTriangleList(m)
	case mesh.TriangleStrip:
		return s.sampleTriangleStrip(m)
	default:
		return nil
	}
}

func (s *UniformSurfaceSampler) sampleTriangleList(m *mesh.Mesh) []mgl32.Vec3 {
	flat := m.DuplicateVertices()
	if len(flat.Normals) != len(flat.Positions) {
		return nil
	}

	var tris []triangle
	var weights []float32
	var total float32
	for i := 0; i+2 < len(flat.Positions); i += 3 {
		a, b, c := flat.Positions[i], flat.Positions[i+1], flat.Positions[i+2]

		n := flat.Normals[i].Add(flat.Normals[i+1]).Add(flat.Normals[i+2])
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		if n.Dot(worldUp) < s.SlopeThreshold {
			continue
		}

		// Unhalved parallelogram area: consistent across the count
		// threshold and the distribution, so the missing ×0.5 cancels
		// out as a relative weight.
		area := a.Sub(b).Cross(a.Sub(c)).Len()
		if area <= 0 {
			continue
		}

		tris = append(tris, triangle{a, b, c})
		weights = append(weights, area)
		total += area
	}

	count := int(total * s.Density)
	if count <= 0 || len(tris) == 0 {
		return nil
	}

	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	dist := newAliasTable(weights)
	points := make([]mgl32.Vec3, 0, count)
	for n := 0; n < count; n++ {
		points = append(points, samplePoint(tris[dist.draw(rng)], rng))
	}
	return points
}

// sampleTriangleStrip is reserved for strip meshes.
// TODO: de-index strips into triples and reuse sampleTriangleList; no
// producer in this module emits strips today.
func (s *UniformSurfaceSampler) sampleTriangleStrip(m *mesh.Mesh) []mgl32.Vec3 {
	return nil
}

// samplePoint picks a uniform point inside the triangle via barycentric
// interpolation. Draws past the diagonal are reflected back into the
// triangle, so every draw yields a valid point without rejection.
func samplePoint(t triangle, rng *rand.Rand) mgl32.Vec3 {
	u := rng.Float32()
	v := rng.Float32()
	if u+v > 1 {
		u = 1 - u
		v = 1 - v
	}
	return t.a.
		Add(t.b.Sub(t.a).Mul(u)).
		Add(t.c.Sub(t.a).Mul(v))
}
