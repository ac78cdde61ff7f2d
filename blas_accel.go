//go:build accelerate

package main

// #cgo LDFLAGS: -framework Accelerate
import "C"
import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

// Forces the mat operations (nearest-neighbor scoring, row normalization)
// onto Apple's Accelerate framework when built with `-tags accelerate`.
func init() {
	blas64.Use(netlib.Implementation{})
}
