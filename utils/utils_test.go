package utils

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestSigmoidTableMatchesLogistic(t *testing.T) {
	s := NewSigmoidTable(1000, 6)
	for x := -5.9; x <= 5.9; x += 0.1 {
		want := 1 / (1 + math.Exp(-x))
		got := s.Sigmoid(x)
		if math.Abs(got-want) > 0.01 {
			t.Fatalf("sigmoid(%.2f) = %.6g, want %.6g +- 0.01", x, got, want)
		}
	}
	if got := s.Sigmoid(0); math.Abs(got-0.5) > 0.01 {
		t.Fatalf("sigmoid(0) = %.6g, want 0.5", got)
	}
}

func TestSigmoidTableSaturates(t *testing.T) {
	s := NewSigmoidTable(1000, 6)
	if got := s.Sigmoid(100); got != 1 {
		t.Fatalf("sigmoid(100) = %v, want 1", got)
	}
	if got := s.Sigmoid(-100); got != 0 {
		t.Fatalf("sigmoid(-100) = %v, want 0", got)
	}
}

func TestSigmoidTableMonotone(t *testing.T) {
	s := NewSigmoidTable(512, 4)
	prev := -1.0
	for x := -5.0; x <= 5.0; x += 0.05 {
		v := s.Sigmoid(x)
		if v < prev {
			t.Fatalf("sigmoid not monotone at %.2f: %v < %v", x, v, prev)
		}
		prev = v
	}
}

func TestLRSchedule(t *testing.T) {
	alpha0 := 0.025
	if got := LRSchedule(alpha0, 0, 1000, 1e-4); math.Abs(got-alpha0) > 1e-6 {
		t.Fatalf("undecayed rate %.6g, want %.6g", got, alpha0)
	}
	mid := LRSchedule(alpha0, 500, 1000, 1e-4)
	if mid >= alpha0 || mid <= 0 {
		t.Fatalf("half-way rate %.6g outside (0, %.6g)", mid, alpha0)
	}
	floorVal := LRSchedule(alpha0, 10000, 1000, 1e-4)
	if math.Abs(floorVal-alpha0*1e-4) > 1e-12 {
		t.Fatalf("floored rate %.6g, want %.6g", floorVal, alpha0*1e-4)
	}
}

func TestUniformArrayRange(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	a := UniformArray(10000, 0.005, r)
	for i, v := range a {
		if v <= -0.005 || v >= 0.005 {
			t.Fatalf("element %d = %v outside (-0.005, 0.005)", i, v)
		}
	}
	// A mean near zero is the cheap sanity check that both halves are hit.
	if mean := floats.Sum(a) / float64(len(a)); math.Abs(mean) > 0.001 {
		t.Fatalf("mean %v too far from zero", mean)
	}
}

func TestNormalizeRows(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{3, 4, 0, 0, 1, 1})
	NormalizeRows(m)
	for _, i := range []int{0, 2} {
		if n := floats.Norm(m.RawRowView(i), 2); math.Abs(n-1) > 1e-12 {
			t.Fatalf("row %d norm %v, want 1", i, n)
		}
	}
	if m.At(1, 0) != 0 || m.At(1, 1) != 0 {
		t.Fatal("zero row must stay zero")
	}
}
