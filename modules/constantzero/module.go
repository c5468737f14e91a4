// Package constantzero provides the 'constant-zero' fluid-pressure boundary
// model: a vanishing fluid pressure gradient everywhere on the boundary.
package constantzero

import (
	"github.com/aguspesce/aspect/internal/boundary/fluidpressure"
	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/material"
)

// ModelName is the selection key for this model.
const ModelName = "constant-zero"

// Module implements the fluidpressure.Module interface for this package.
type Module struct{}

// Register registers the model in every dimension variant. The model takes
// no options, so it has no declare hook.
func (m *Module) Register(r *fluidpressure.Registries) error {
	return r.Add(fluidpressure.Registration{
		Name: ModelName,
		Description: "A model in which the fluid pressure gradient vanishes at the " +
			"boundary, so the fluid pressure equals a constant there.",
		Factory: func(dim int) fluidpressure.Model {
			return &model{Base: fluidpressure.Base{Dim: dim}}
		},
	})
}

// model is one instance of the constant-zero boundary model. It inherits the
// no-op ParseParameters and the default Initialize from fluidpressure.Base.
type model struct {
	fluidpressure.Base
}

// FluidPressureGradient fills out with zero vectors.
func (m *model) FluidPressureGradient(boundary geometry.BoundaryID, in *material.Inputs, matOut *material.Outputs, out []geometry.Vector) {
	m.CheckInitialized()
	m.CheckOutput(in, out)

	for q := range out {
		out[q].Zero()
	}
}
