package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
	"github.com/mosswood/verdant/internal/engine/scene/shaders"
	"github.com/mosswood/verdant/internal/engine/shader"
)

// TerrainRenderer owns the GPU resources for the terrain mesh.
type TerrainRenderer struct {
	program *shader.Program

	vao, vbo, ebo uint32
	indexCount    int32

	// BaseColor tints the untextured ground.
	BaseColor mgl32.Vec3

	// Bounds of the uploaded mesh, for camera framing.
	Bounds mesh.Bounds
}

// NewTerrainRenderer compiles the terrain shader.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.New(shaders.TerrainVertex, shaders.TerrainFragment)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	return &TerrainRenderer{
		program:   program,
		BaseColor: mgl32.Vec3{0.28, 0.42, 0.16},
	}, nil
}

// Upload copies the terrain mesh into GPU buffers, replacing any
// previously uploaded terrain.
func (r *TerrainRenderer) Upload(m *mesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("terrain mesh: %w", err)
	}
	if m.Topology != mesh.TriangleList || len(m.Indices) == 0 {
		return fmt.Errorf("terrain mesh: need an indexed triangle list, got %s", m.Topology)
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

	gl.BindVertexArray(0)

	r.indexCount = int32(len(m.Indices))
	r.Bounds = m.Bounds()
	return nil
}

// Render draws the terrain with a single directional light.
func (r *TerrainRenderer) Render(viewProj, model mgl32.Mat4, light Lighting) {
	if r.vao == 0 {
		return
	}

	r.program.Use()
	r.program.SetMat4("uViewProj", viewProj)
	r.program.SetMat4("uModel", model)
	r.program.SetVec3("uLightDir", light.Direction)
	r.program.SetVec3("uAmbient", light.Ambient)
	r.program.SetVec3("uDiffuse", light.Diffuse)
	r.program.SetVec3("uBaseColor", r.BaseColor)
	r.program.SetVec3("uCameraPos", light.CameraPos)
	if light.FogEnabled {
		r.program.SetInt("uFogUse", 1)
		r.program.SetFloat("uFogNear", light.FogNear)
		r.program.SetFloat("uFogFar", light.FogFar)
		r.program.SetVec3("uFogColor", light.FogColor)
	} else {
		r.program.SetInt("uFogUse", 0)
	}

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (r *TerrainRenderer) clear() {
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
	r.indexCount = 0
}

// Destroy releases all resources.
func (r *TerrainRenderer) Destroy() {
	r.clear()
	if r.program != nil {
		r.program.Destroy()
	}
}
