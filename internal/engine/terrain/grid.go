package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mosswood/verdant/internal/engine/noise"
)

// grid is the materialized (width+1)×(height+1) lattice of surface
// points the mesh is assembled from. Row-major with X as the outer
// axis: flat index i·rows + j.
type grid struct {
	points     []mgl32.Vec3
	cols, rows int
}

func newGrid(cfg Config, heights *noise.PlaneMap) *grid {
	g := &grid{cols: cfg.Width + 1, rows: cfg.Height + 1}
	g.points = make([]mgl32.Vec3, 0, g.cols*g.rows)
	for i := 0; i < g.cols; i++ {
		x := float32(i) * cfg.CellScale
		for j := 0; j < g.rows; j++ {
			z := float32(j) * cfg.CellScale
			y := float32(heights.Get(i, j)) * cfg.CellScale * cfg.Amplitude
			g.points = append(g.points, mgl32.Vec3{x, y, z})
		}
	}
	return g
}

// at returns the lattice point at (i, j), or the zero vector when the
// coordinates fall outside the lattice.
func (g *grid) at(i, j int) mgl32.Vec3 {
	if i < 0 || i >= g.cols || j < 0 || j >= g.rows {
		return mgl32.Vec3{}
	}
	return g.points[i*g.rows+j]
}

// averageNormal estimates the surface normal at lattice point (i, j) by
// summing the cross products of the fan spanned by its axis neighbors.
// Neighbors beyond the lattice edge contribute the zero vector, which
// drops their fan terms and leaves edge points with a coarser but still
// valid estimate.
func (g *grid) averageNormal(i, j int) mgl32.Vec3 {
	origin := g.at(i, j)
	edge := func(ni, nj int) mgl32.Vec3 {
		if ni < 0 || ni >= g.cols || nj < 0 || nj >= g.rows {
			return mgl32.Vec3{}
		}
		return g.at(ni, nj).Sub(origin)
	}

	left := edge(i-1, j)
	right := edge(i+1, j)
	up := edge(i, j-1)
	down := edge(i, j+1)

	sum := left.Cross(down).
		Add(down.Cross(right)).
		Add(right.Cross(up)).
		Add(up.Cross(left))
	return normalizeOrZero(sum)
}

// normalizeOrZero normalizes v, mapping the zero vector to itself
// instead of NaN. The zero sum only occurs for an isolated lattice
// point with no usable neighbors.
func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
