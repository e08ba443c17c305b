// Package grass places grass blade instances on arbitrary meshes.
package grass

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mosswood/verdant/internal/engine/mesh"
	"github.com/mosswood/verdant/internal/engine/sampling"
	"github.com/mosswood/verdant/internal/logger"
)

// Scattering defaults; the slope threshold keeps blades off cliff faces.
const (
	DefaultDensity        = 16.0
	DefaultSlopeThreshold = 0.75
)

// Instance is the per-blade payload handed to the instanced renderer: a
// world-space position and a uniform scale, packed as one vec4 on the
// GPU (xyz = position, w = scale).
type Instance struct {
	Position mgl32.Vec3
	Scale    float32
}

// InstanceSize is the byte stride of one Instance in the GPU buffer.
const InstanceSize = 4 * 4

// Field couples a source surface with its scattering parameters.
type Field struct {
	Mesh *mesh.Mesh
	// Density is the number of blades per unit of surface weight.
	Density float32
	// SlopeThreshold keeps blades off faces steeper than the sampler
	// accepts; see sampling.UniformSurfaceSampler.
	SlopeThreshold float32
	// Rand makes scattering reproducible when set.
	Rand *rand.Rand
}

// Scatter samples the field's mesh and returns one instance per point,
// transformed into world space with a uniform scale of 1.
//
// An empty result means nothing to spawn and is not an error: either
// the density rounded down to zero points or every triangle failed the
// slope filter. Meshes with an unsupported topology also spawn nothing;
// that case is logged so it can be told apart from a sparse field.
func (f *Field) Scatter(transform mgl32.Mat4) []Instance {
	if f.Mesh == nil {
		return nil
	}
	if f.Mesh.Topology != mesh.TriangleList {
		logger.Warn("grass: mesh topology has no sampling strategy, spawning nothing",
			zap.Stringer("topology", f.Mesh.Topology))
		return nil
	}

	sampler := &sampling.UniformSurfaceSampler{
		Density:        f.Density,
		SlopeThreshold: f.SlopeThreshold,
		Rand:           f.Rand,
	}
	points := sampler.Sample(f.Mesh)
	if len(points) == 0 {
		return nil
	}

	instances := make([]Instance, 0, len(points))
	for _, p := range points {
		instances = append(instances, Instance{
			Position: mgl32.TransformCoordinate(p, transform),
			Scale:    1,
		})
	}
	return instances
}
