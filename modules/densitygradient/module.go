// Package densitygradient provides the 'density-gradient' fluid-pressure
// boundary model: the gradient of the fluid pressure equals a density times
// the gravity vector at each quadrature point.
package densitygradient

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/aguspesce/aspect/internal/boundary/fluidpressure"
	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/material"
	"github.com/aguspesce/aspect/internal/params"
)

// ModelName is the selection key for this model.
const ModelName = "density-gradient"

// Module implements the fluidpressure.Module interface for this package.
type Module struct{}

// Register registers the model in every dimension variant.
func (m *Module) Register(r *fluidpressure.Registries) error {
	return r.Add(fluidpressure.Registration{
		Name: ModelName,
		Description: "A model in which the fluid pressure gradient at the boundary " +
			"equals the density times the gravity vector, so that melt neither " +
			"flows in nor out relative to the chosen density formulation.",
		Declare: declareParameters,
		Factory: func(dim int) fluidpressure.Model {
			return &model{Base: fluidpressure.Base{Dim: dim}}
		},
	})
}

// model is one instance of the density-gradient boundary model.
type model struct {
	fluidpressure.Base

	formulation      string
	referenceDensity float64
}

func declareParameters(s *params.Section) {
	s.Declare(params.Option{
		Name:    "formulation",
		Type:    cty.String,
		Default: cty.StringVal("solid"),
		Description: "Which density field enters the gradient: 'solid' uses the " +
			"bulk density, 'fluid' uses the melt density.",
		Validate: params.OneOf("solid", "fluid"),
	})
	s.Declare(params.Option{
		Name:    "reference_density",
		Type:    cty.Number,
		Default: cty.NumberIntVal(0),
		Description: "A constant density in kg/m^3 to use instead of the pointwise " +
			"material density. Zero selects the pointwise density.",
		Validate: params.NonNegative(),
	})
}

// ParseParameters stores the validated option values on the instance.
func (m *model) ParseParameters(v *params.Values) error {
	m.formulation = v.String("formulation")
	m.referenceDensity = v.Number("reference_density")
	return nil
}

// FluidPressureGradient fills out with density * gravity per quadrature point.
func (m *model) FluidPressureGradient(boundary geometry.BoundaryID, in *material.Inputs, matOut *material.Outputs, out []geometry.Vector) {
	m.CheckInitialized()
	m.CheckOutput(in, out)

	for q := range out {
		density := m.referenceDensity
		if density == 0 {
			if m.formulation == "fluid" {
				density = matOut.FluidDensities[q]
			} else {
				density = matOut.Densities[q]
			}
		}
		out[q].Scaled(in.Gravity[q], density)
	}
}
