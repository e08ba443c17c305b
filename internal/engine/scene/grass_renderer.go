package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/grass"
	"github.com/mosswood/verdant/internal/engine/mesh"
	"github.com/mosswood/verdant/internal/engine/scene/shaders"
	"github.com/mosswood/verdant/internal/engine/shader"
)

// GrassRenderer draws every grass blade in a single instanced call: one
// shared blade mesh plus a per-instance buffer of (position, scale)
// vec4s advanced once per instance.
type GrassRenderer struct {
	program *shader.Program

	vao, vbo, ebo uint32
	instanceVBO   uint32
	indexCount    int32
	instanceCount int32

	// BaseColor tints the blades.
	BaseColor mgl32.Vec3
}

// NewGrassRenderer compiles the grass shader.
func NewGrassRenderer() (*GrassRenderer, error) {
	program, err := shader.New(shaders.GrassVertex, shaders.GrassFragment)
	if err != nil {
		return nil, fmt.Errorf("grass shader: %w", err)
	}
	return &GrassRenderer{
		program:   program,
		BaseColor: mgl32.Vec3{0.33, 0.55, 0.2},
	}, nil
}

// UploadBlade uploads the blade mesh shared by all instances and wires
// the instance attribute slot.
func (r *GrassRenderer) UploadBlade(m *mesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("blade mesh: %w", err)
	}
	if m.Topology != mesh.TriangleList || len(m.Indices) == 0 {
		return fmt.Errorf("blade mesh: need an indexed triangle list, got %s", m.Topology)
	}
	r.clear()

	verts := interleave(m)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Instance attribute: one vec4 per blade, advanced per instance.
	gl.GenBuffers(1, &r.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	gl.VertexAttribPointerWithOffset(3, 4, gl.FLOAT, false, grass.InstanceSize, 0)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribDivisor(3, 1)

	gl.BindVertexArray(0)

	r.indexCount = int32(len(m.Indices))
	return nil
}

// UploadInstances replaces the per-instance buffer. An empty slice
// simply disables drawing.
func (r *GrassRenderer) UploadInstances(instances []grass.Instance) {
	r.instanceCount = int32(len(instances))
	if len(instances) == 0 || r.instanceVBO == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(instances)*grass.InstanceSize,
		unsafe.Pointer(&instances[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render issues one instanced draw for all blades.
func (r *GrassRenderer) Render(viewProj mgl32.Mat4, light Lighting) {
	if r.vao == 0 || r.instanceCount == 0 {
		return
	}

	r.program.Use()
	r.program.SetMat4("uViewProj", viewProj)
	r.program.SetVec3("uLightDir", light.Direction)
	r.program.SetVec3("uAmbient", light.Ambient)
	r.program.SetVec3("uDiffuse", light.Diffuse)
	r.program.SetVec3("uBaseColor", r.BaseColor)

	// Blades are modeled as flat cards; both faces must show.
	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(r.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil, r.instanceCount)
	gl.BindVertexArray(0)
	gl.Enable(gl.CULL_FACE)
}

func (r *GrassRenderer) clear() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.instanceVBO != 0 {
		gl.DeleteBuffers(1, &r.instanceVBO)
		r.instanceVBO = 0
	}
	r.indexCount = 0
	r.instanceCount = 0
}

// Destroy releases all resources.
func (r *GrassRenderer) Destroy() {
	r.clear()
	if r.program != nil {
		r.program.Destroy()
	}
}
