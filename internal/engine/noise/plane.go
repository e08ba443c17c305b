package noise

// PlaneConfig describes the lattice a PlaneMap materializes and the
// region of the source field it covers.
type PlaneConfig struct {
	Cols, Rows int // lattice points per axis
	X0, X1     float64
	Y0, Y1     float64
	// Seamless blends each sample with the three samples one domain
	// extent away so that opposite edges of the map carry identical
	// values and the field tiles.
	Seamless bool
}

// PlaneMap is a scalar field fully materialized on a regular lattice.
// It is built once and never mutated.
type PlaneMap struct {
	values     []float64
	cols, rows int
}

// BuildPlaneMap samples src on a Cols×Rows lattice spanning the
// configured bounds.
func BuildPlaneMap(src Field, cfg PlaneConfig) *PlaneMap {
	m := &PlaneMap{cols: cfg.Cols, rows: cfg.Rows}
	if cfg.Cols < 1 || cfg.Rows < 1 {
		return m
	}
	m.values = make([]float64, cfg.Cols*cfg.Rows)

	xExtent := cfg.X1 - cfg.X0
	yExtent := cfg.Y1 - cfg.Y0
	var xStep, yStep float64
	if cfg.Cols > 1 {
		xStep = xExtent / float64(cfg.Cols-1)
	}
	if cfg.Rows > 1 {
		yStep = yExtent / float64(cfg.Rows-1)
	}

	for j := 0; j < cfg.Rows; j++ {
		y := cfg.Y0 + float64(j)*yStep
		for i := 0; i < cfg.Cols; i++ {
			x := cfg.X0 + float64(i)*xStep
			var v float64
			if cfg.Seamless && xExtent > 0 && yExtent > 0 {
				sw := src.Sample(x, y)
				se := src.Sample(x+xExtent, y)
				nw := src.Sample(x, y+yExtent)
				ne := src.Sample(x+xExtent, y+yExtent)
				xBlend := 1 - (x-cfg.X0)/xExtent
				yBlend := 1 - (y-cfg.Y0)/yExtent
				v = lerp(lerp(sw, se, xBlend), lerp(nw, ne, xBlend), yBlend)
			} else {
				v = src.Sample(x, y)
			}
			m.values[j*cfg.Cols+i] = v
		}
	}
	return m
}

// Get returns the lattice value at (i, j). Coordinates outside the
// lattice yield 0 rather than a panic.
func (m *PlaneMap) Get(i, j int) float64 {
	if i < 0 || i >= m.cols || j < 0 || j >= m.rows {
		return 0
	}
	return m.values[j*m.cols+i]
}

// Size returns the lattice dimensions.
func (m *PlaneMap) Size() (cols, rows int) {
	return m.cols, m.rows
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
