// Package noise provides the coherent fractal height field behind the
// terrain generator.
package noise

import (
	"github.com/aquilax/go-perlin"
)

// Field is a deterministic scalar field over continuous 2D coordinates.
type Field interface {
	Sample(x, y float64) float64
}

const fractalOctaves = 6

// Fractal sums octaves of Perlin noise into a smooth scalar field with
// values roughly in [-1, 1]. It is pure and stateless after construction.
type Fractal struct {
	frequency float64
	noise     *perlin.Perlin
}

// NewFractal builds a fractal noise source. persistence is the per-octave
// amplitude falloff, lacunarity the per-octave frequency ratio. The same
// parameters and seed always produce the same field.
func NewFractal(frequency, persistence, lacunarity float64, seed int64) *Fractal {
	// go-perlin expresses the amplitude falloff as a divisor: octave i
	// contributes noise(p·beta^i) / alpha^i, so alpha = 1/persistence.
	return &Fractal{
		frequency: frequency,
		noise:     perlin.NewPerlin(1/persistence, lacunarity, fractalOctaves, seed),
	}
}

// Sample evaluates the field at (x, y).
func (f *Fractal) Sample(x, y float64) float64 {
	return f.noise.Noise2D(x*f.frequency, y*f.frequency)
}
