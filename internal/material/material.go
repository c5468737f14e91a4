// Package material holds the quadrature-point data containers exchanged with
// the material model. The material model itself is an external collaborator;
// these structs only carry its per-point evaluation results through the
// boundary-model interface.
package material

import "github.com/aguspesce/aspect/internal/geometry"

// Inputs is the per-quadrature-point evaluation context handed to a boundary
// model. Boundary models read it during a single compute call and must not
// retain references to it afterwards; the caller owns and reuses the backing
// slices.
type Inputs struct {
	// Position of each quadrature point.
	Position []geometry.Vector

	// Gravity at each quadrature point.
	Gravity []geometry.Vector

	// Temperature and Pressure at each quadrature point.
	Temperature []float64
	Pressure    []float64
}

// Outputs carries the material model's evaluation results at each quadrature
// point. Like Inputs, it is transient and caller-owned.
type Outputs struct {
	// Densities is the solid (bulk) density at each quadrature point.
	Densities []float64

	// FluidDensities is the melt density at each quadrature point.
	FluidDensities []float64

	// Viscosities at each quadrature point.
	Viscosities []float64
}

// NewInputs returns an Inputs sized for n quadrature points in the given
// dimension.
func NewInputs(n, dim int) *Inputs {
	return &Inputs{
		Position:    geometry.NewVectors(n, dim),
		Gravity:     geometry.NewVectors(n, dim),
		Temperature: make([]float64, n),
		Pressure:    make([]float64, n),
	}
}

// NewOutputs returns an Outputs sized for n quadrature points.
func NewOutputs(n int) *Outputs {
	return &Outputs{
		Densities:      make([]float64, n),
		FluidDensities: make([]float64, n),
		Viscosities:    make([]float64, n),
	}
}

// Points returns the number of quadrature points in.
func (in *Inputs) Points() int {
	return len(in.Position)
}
