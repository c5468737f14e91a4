// Package geometry provides the small fixed-dimension value types shared by
// boundary models and the material containers.
package geometry

import "fmt"

// BoundaryID names one part of the domain boundary, e.g. "bottom".
type BoundaryID string

// Supported spatial dimensions. Every boundary-model interface kind is
// instantiated once per dimension.
var SupportedDims = []int{2, 3}

// ValidDim reports whether dim is a supported spatial dimension.
func ValidDim(dim int) bool {
	for _, d := range SupportedDims {
		if d == dim {
			return true
		}
	}
	return false
}

// Vector is a dim-component vector, e.g. a gravity vector or a pressure
// gradient at a quadrature point.
type Vector []float64

// NewVector returns a zero vector of the given dimension.
func NewVector(dim int) Vector {
	if !ValidDim(dim) {
		panic(fmt.Sprintf("geometry: unsupported dimension %d", dim))
	}
	return make(Vector, dim)
}

// NewVectors returns n zero vectors of the given dimension, one per
// quadrature point.
func NewVectors(n, dim int) []Vector {
	out := make([]Vector, n)
	for i := range out {
		out[i] = NewVector(dim)
	}
	return out
}

// Dim returns the number of components of v.
func (v Vector) Dim() int {
	return len(v)
}

// Scaled writes s*w into v. The two vectors must have the same dimension.
func (v Vector) Scaled(w Vector, s float64) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("geometry: dimension mismatch %d vs %d", len(v), len(w)))
	}
	for d := range v {
		v[d] = s * w[d]
	}
}

// Zero sets all components of v to zero.
func (v Vector) Zero() {
	for d := range v {
		v[d] = 0
	}
}
