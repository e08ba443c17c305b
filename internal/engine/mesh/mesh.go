// Package mesh defines the triangle mesh value passed between the terrain
// generator, the surface sampler and the renderers.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Topology describes how the vertex stream forms primitives.
type Topology int

const (
	TriangleList Topology = iota
	TriangleStrip
	LineList
	LineStrip
	PointList
)

func (t Topology) String() string {
	switch t {
	case TriangleList:
		return "triangle-list"
	case TriangleStrip:
		return "triangle-strip"
	case LineList:
		return "line-list"
	case LineStrip:
		return "line-strip"
	case PointList:
		return "point-list"
	}
	return fmt.Sprintf("topology(%d)", int(t))
}

// Mesh holds the vertex attributes and index buffer for one draw call.
// A Mesh is treated as immutable once built; helpers that need a
// different layout return a new value.
type Mesh struct {
	Topology  Topology
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Validate checks the attribute-length and index invariants.
func (m *Mesh) Validate() error {
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("mesh: %d normals for %d positions", len(m.Normals), len(m.Positions))
	}
	if len(m.UVs) != 0 && len(m.UVs) != len(m.Positions) {
		return fmt.Errorf("mesh: %d uvs for %d positions", len(m.UVs), len(m.Positions))
	}
	if m.Topology == TriangleList {
		n := len(m.Indices)
		if n == 0 {
			n = len(m.Positions)
		}
		if n%3 != 0 {
			return fmt.Errorf("mesh: triangle list with %d indices", n)
		}
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("mesh: index %d out of range (%d vertices)", idx, len(m.Positions))
		}
	}
	return nil
}

// TriangleCount returns the number of triangles the mesh describes.
// Non-triangle topologies count zero.
func (m *Mesh) TriangleCount() int {
	n := len(m.Indices)
	if n == 0 {
		n = len(m.Positions)
	}
	switch m.Topology {
	case TriangleList:
		return n / 3
	case TriangleStrip:
		if n < 3 {
			return 0
		}
		return n - 2
	}
	return 0
}

// DuplicateVertices returns a mesh in which no vertex is shared between
// primitives: every index becomes a fresh vertex and the index buffer is
// dropped. A mesh without indices is already in this form and is
// returned unchanged.
func (m *Mesh) DuplicateVertices() *Mesh {
	if len(m.Indices) == 0 {
		return m
	}
	out := &Mesh{
		Topology:  m.Topology,
		Positions: make([]mgl32.Vec3, 0, len(m.Indices)),
		Normals:   make([]mgl32.Vec3, 0, len(m.Indices)),
	}
	if len(m.UVs) > 0 {
		out.UVs = make([]mgl32.Vec2, 0, len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			continue
		}
		out.Positions = append(out.Positions, m.Positions[idx])
		out.Normals = append(out.Normals, m.Normals[idx])
		if len(m.UVs) > 0 {
			out.UVs = append(out.UVs, m.UVs[idx])
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of all positions.
// An empty mesh yields the zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < b.Min[i] {
				b.Min[i] = p[i]
			}
			if p[i] > b.Max[i] {
				b.Max[i] = p[i]
			}
		}
	}
	return b
}
