// Package constantgradient provides the 'constant-gradient' fluid-pressure
// boundary model: a fixed, user-supplied gradient vector applied at every
// quadrature point.
package constantgradient

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/aguspesce/aspect/internal/boundary/fluidpressure"
	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/material"
	"github.com/aguspesce/aspect/internal/params"
)

// ModelName is the selection key for this model.
const ModelName = "constant-gradient"

// Module implements the fluidpressure.Module interface for this package.
type Module struct{}

// Register registers the model in every dimension variant.
func (m *Module) Register(r *fluidpressure.Registries) error {
	return r.Add(fluidpressure.Registration{
		Name: ModelName,
		Description: "A model in which the fluid pressure gradient at the boundary " +
			"is a constant vector given in the parameter file.",
		Declare: declareParameters,
		Factory: func(dim int) fluidpressure.Model {
			return &model{Base: fluidpressure.Base{Dim: dim}}
		},
	})
}

// model is one instance of the constant-gradient boundary model.
type model struct {
	fluidpressure.Base

	gradient geometry.Vector
}

func declareParameters(s *params.Section) {
	s.Declare(params.Option{
		Name:    "gradient",
		Type:    cty.List(cty.Number),
		Default: cty.ListValEmpty(cty.Number),
		Description: "The components of the gradient vector in Pa/m. An empty list " +
			"means a zero gradient; otherwise the number of components must match " +
			"the dimension of the run.",
	})
}

// ParseParameters stores the gradient vector, checking its length against
// the dimension this instance was created for. The check cannot live in the
// declared validator because the schema is shared by both dimension kinds.
func (m *model) ParseParameters(v *params.Values) error {
	components := v.NumberList("gradient")
	if len(components) == 0 {
		m.gradient = make(geometry.Vector, m.Dim)
		return nil
	}
	if len(components) != m.Dim {
		return &params.InvalidOptionError{
			Section: ModelName,
			Option:  "gradient",
			Reason:  fmt.Sprintf("has %d components, the run is %dD", len(components), m.Dim),
		}
	}
	m.gradient = geometry.Vector(components)
	return nil
}

// FluidPressureGradient fills out with the configured constant vector.
func (m *model) FluidPressureGradient(boundary geometry.BoundaryID, in *material.Inputs, matOut *material.Outputs, out []geometry.Vector) {
	m.CheckInitialized()
	m.CheckOutput(in, out)

	for q := range out {
		copy(out[q], m.gradient)
	}
}
