// Package wavefront encodes meshes as Wavefront OBJ text for offline
// inspection in standard model viewers.
package wavefront

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mosswood/verdant/internal/engine/mesh"
)

// Encode writes m as a single OBJ object named name.
func Encode(w io.Writer, m *mesh.Mesh, name string) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("wavefront: %w", err)
	}
	if m.Topology != mesh.TriangleList {
		return fmt.Errorf("wavefront: only triangle lists export, got %s", m.Topology)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)

	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X(), p.Y(), p.Z())
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X(), uv.Y())
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X(), n.Y(), n.Z())
	}

	hasUVs := len(m.UVs) > 0
	writeFace := func(a, b, c uint32) {
		// OBJ indices are 1-based and shared across attribute streams
		// here because the mesh keeps its attributes parallel.
		if hasUVs {
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
				a+1, a+1, a+1, b+1, b+1, b+1, c+1, c+1, c+1)
		} else {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
				a+1, a+1, b+1, b+1, c+1, c+1)
		}
	}

	if len(m.Indices) > 0 {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			writeFace(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	} else {
		for i := 0; i+2 < len(m.Positions); i += 3 {
			writeFace(uint32(i), uint32(i+1), uint32(i+2))
		}
	}

	return bw.Flush()
}
