package utils

import "math"

// SigmoidTable is a precomputed lookup approximation of the logistic
// function over [-max, +max]. Every worker shares one read-only table; the
// quantization error is far below the noise of stochastic updates.
type SigmoidTable struct {
	table []float64
	max   float64
	scale float64
}

// NewSigmoidTable fills size slots with exp(x)/(exp(x)+1) for x spread
// evenly across [-max, +max].
func NewSigmoidTable(size int, max float64) *SigmoidTable {
	t := &SigmoidTable{
		table: make([]float64, size),
		max:   max,
		scale: float64(size) / (2 * max),
	}
	for i := 0; i < size; i++ {
		s := math.Exp((float64(i)/float64(size)*2 - 1) * max)
		t.table[i] = s / (s + 1)
	}
	return t
}

// Sigmoid looks up the logistic value for x. Inputs outside [-max, +max]
// saturate to 0 or 1.
func (t *SigmoidTable) Sigmoid(x float64) float64 {
	if x >= t.max {
		return 1
	}
	if x <= -t.max {
		return 0
	}
	i := int((x + t.max) * t.scale)
	if i < 0 {
		i = 0
	} else if i >= len(t.table) {
		i = len(t.table) - 1
	}
	return t.table[i]
}

// Max returns the clamp range of the table.
func (t *SigmoidTable) Max() float64 {
	return t.max
}
