package wavefront

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/mesh"
)

func triangleMesh() *mesh.Mesh {
	up := mgl32.Vec3{0, 1, 0}
	return &mesh.Mesh{
		Topology: mesh.TriangleList,
		Positions: []mgl32.Vec3{
			{0, 0, 0}, {1, 0, 0}, {0, 0, 1},
		},
		Normals: []mgl32.Vec3{up, up, up},
		UVs: []mgl32.Vec2{
			{0, 0}, {1, 0}, {0, 1},
		},
		Indices: []uint32{0, 1, 2},
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, triangleMesh(), "tri"); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out := buf.String()
	wantLines := []string{
		"o tri",
		"v 0 0 0",
		"v 1 0 0",
		"v 0 0 1",
		"vt 0 0",
		"vn 0 1 0",
		"f 1/1/1 2/2/2 3/3/3",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("output missing line %q:\n%s", want, out)
		}
	}
}

func TestEncodeWithoutUVs(t *testing.T) {
	m := triangleMesh()
	m.UVs = nil

	var buf bytes.Buffer
	if err := Encode(&buf, m, "bare"); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "vt ") {
		t.Error("output contains vt lines for a mesh without uvs")
	}
	if !strings.Contains(out, "f 1//1 2//2 3//3\n") {
		t.Errorf("output missing uv-less face:\n%s", out)
	}
}

func TestEncodeNonIndexed(t *testing.T) {
	m := triangleMesh()
	m.Indices = nil

	var buf bytes.Buffer
	if err := Encode(&buf, m, "soup"); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(buf.String(), "f 1/1/1 2/2/2 3/3/3\n") {
		t.Errorf("non-indexed mesh missing face:\n%s", buf.String())
	}
}

func TestEncodeRejects(t *testing.T) {
	strip := triangleMesh()
	strip.Topology = mesh.TriangleStrip
	if err := Encode(&bytes.Buffer{}, strip, "strip"); err == nil {
		t.Error("Encode() accepted a triangle strip")
	}

	invalid := triangleMesh()
	invalid.Normals = invalid.Normals[:1]
	if err := Encode(&bytes.Buffer{}, invalid, "broken"); err == nil {
		t.Error("Encode() accepted an invalid mesh")
	}
}
