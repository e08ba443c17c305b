package noise

import (
	"math"
	"testing"
)

func TestFractalDeterministic(t *testing.T) {
	a := NewFractal(0.032, 0.11, 11.0, 42)
	b := NewFractal(0.032, 0.11, 11.0, 42)

	points := [][2]float64{{0, 0}, {1.5, 2.5}, {64, 64}, {-10, 7.25}}
	for _, p := range points {
		va := a.Sample(p[0], p[1])
		vb := b.Sample(p[0], p[1])
		if va != vb {
			t.Errorf("Sample(%g, %g) not deterministic: %g vs %g", p[0], p[1], va, vb)
		}
	}
}

func TestFractalSeedChangesField(t *testing.T) {
	a := NewFractal(0.032, 0.11, 11.0, 1)
	b := NewFractal(0.032, 0.11, 11.0, 2)

	same := true
	for i := 0; i < 16; i++ {
		x := float64(i) * 3.7
		if a.Sample(x, x/2) != b.Sample(x, x/2) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced an identical field")
	}
}

func TestFractalRange(t *testing.T) {
	f := NewFractal(0.032, 0.11, 11.0, 0)
	for i := 0; i < 100; i++ {
		for j := 0; j < 100; j++ {
			v := f.Sample(float64(i), float64(j))
			if math.IsNaN(v) || v < -2 || v > 2 {
				t.Fatalf("Sample(%d, %d) = %g, outside sane range", i, j, v)
			}
		}
	}
}

func TestBuildPlaneMapSize(t *testing.T) {
	m := BuildPlaneMap(NewFractal(0.032, 0.11, 11.0, 0), PlaneConfig{
		Cols: 9, Rows: 5,
		X1: 8, Y1: 4,
	})
	cols, rows := m.Size()
	if cols != 9 || rows != 5 {
		t.Errorf("Size() = (%d, %d), want (9, 5)", cols, rows)
	}
}

func TestPlaneMapSeamlessEdges(t *testing.T) {
	m := BuildPlaneMap(NewFractal(0.032, 0.11, 11.0, 7), PlaneConfig{
		Cols: 17, Rows: 17,
		X1: 16, Y1: 16,
		Seamless: true,
	})

	const tol = 1e-9
	for j := 0; j < 17; j++ {
		left, right := m.Get(0, j), m.Get(16, j)
		if math.Abs(left-right) > tol {
			t.Errorf("row %d: left edge %g != right edge %g", j, left, right)
		}
	}
	for i := 0; i < 17; i++ {
		top, bottom := m.Get(i, 0), m.Get(i, 16)
		if math.Abs(top-bottom) > tol {
			t.Errorf("col %d: top edge %g != bottom edge %g", i, top, bottom)
		}
	}
}

func TestPlaneMapOutOfRange(t *testing.T) {
	m := BuildPlaneMap(NewFractal(0.032, 0.11, 11.0, 0), PlaneConfig{
		Cols: 4, Rows: 4,
		X1: 3, Y1: 3,
	})

	cases := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, c := range cases {
		if v := m.Get(c[0], c[1]); v != 0 {
			t.Errorf("Get(%d, %d) = %g, want 0 for out-of-range", c[0], c[1], v)
		}
	}
}
