package utils

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Numeric helpers shared by the trainer and the driver.

// UniformArray fills a slice of size n with uniform values in (-scale, +scale).
func UniformArray(n int, scale float64, r *rand.Rand) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = (r.Float64()*2 - 1) * scale
	}
	return out
}

// LRSchedule linearly decays alpha0 by the fraction of processed work,
// never dropping below alpha0*floor.
func LRSchedule(alpha0 float64, processed, total int64, floor float64) float64 {
	frac := 1 - float64(processed)/float64(total+1)
	if frac < floor {
		frac = floor
	}
	return alpha0 * frac
}

// NormalizeRows scales each row of m to unit L2 norm in place. Zero rows are
// left untouched.
func NormalizeRows(m *mat.Dense) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		n := floats.Norm(row, 2)
		if n == 0 {
			continue
		}
		floats.Scale(1/n, row)
	}
}
