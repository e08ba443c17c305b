// Package collider derives static collision volumes from meshes.
package collider

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
)

const epsilon = 1e-7

// Triangle is one face of a trimesh in world space.
type Triangle struct {
	A, B, C mgl32.Vec3
}

// Trimesh is a static triangle-soup collision volume built directly from
// a mesh, as opposed to a simplified primitive shape.
type Trimesh struct {
	Triangles []Triangle
	Bounds    mesh.Bounds
}

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Hit describes the nearest ray intersection.
type Hit struct {
	Point    mgl32.Vec3
	Distance float32
	Triangle int // index into Trimesh.Triangles
}

// NewTrimesh builds a collider from every triangle in m. Only
// triangle-list meshes carry enough structure for a trimesh.
func NewTrimesh(m *mesh.Mesh) (*Trimesh, error) {
	if m == nil || m.Topology != mesh.TriangleList {
		return nil, fmt.Errorf("collider: cannot build trimesh from %v mesh", topologyOf(m))
	}
	flat := m.DuplicateVertices()

	t := &Trimesh{
		Triangles: make([]Triangle, 0, len(flat.Positions)/3),
		Bounds:    flat.Bounds(),
	}
	for i := 0; i+2 < len(flat.Positions); i += 3 {
		t.Triangles = append(t.Triangles, Triangle{
			A: flat.Positions[i],
			B: flat.Positions[i+1],
			C: flat.Positions[i+2],
		})
	}
	return t, nil
}

func topologyOf(m *mesh.Mesh) string {
	if m == nil {
		return "nil"
	}
	return m.Topology.String()
}

// Intersect returns the nearest intersection along the ray, if any.
func (t *Trimesh) Intersect(r Ray) (Hit, bool) {
	best := Hit{Distance: -1}
	for i, tri := range t.Triangles {
		d, ok := tri.intersect(r)
		if !ok {
			continue
		}
		if best.Distance < 0 || d < best.Distance {
			best = Hit{
				Point:    r.Origin.Add(r.Direction.Mul(d)),
				Distance: d,
				Triangle: i,
			}
		}
	}
	return best, best.Distance >= 0
}

// HeightAt casts a vertical ray down through (x, z) and returns the
// surface height there. The second result is false when the column
// misses the mesh entirely.
func (t *Trimesh) HeightAt(x, z float32) (float32, bool) {
	origin := mgl32.Vec3{x, t.Bounds.Max.Y() + 1, z}
	hit, ok := t.Intersect(Ray{Origin: origin, Direction: mgl32.Vec3{0, -1, 0}})
	if !ok {
		return 0, false
	}
	return hit.Point.Y(), true
}

// intersect runs Möller–Trumbore against a single triangle, hitting
// either side of the face.
func (tri Triangle) intersect(r Ray) (float32, bool) {
	e1 := tri.B.Sub(tri.A)
	e2 := tri.C.Sub(tri.A)

	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -epsilon && det < epsilon {
		return 0, false // parallel or degenerate
	}
	inv := 1 / det

	s := r.Origin.Sub(tri.A)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	d := e2.Dot(q) * inv
	if d <= epsilon {
		return 0, false // behind the origin
	}
	return d, true
}
