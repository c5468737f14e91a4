// Package fluidpressure defines the boundary values of the fluid pressure
// for computations with melt transport, and the registries through which
// concrete models are selected from the parameter file.
package fluidpressure

import (
	"context"
	"fmt"

	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/material"
	"github.com/aguspesce/aspect/internal/params"
)

// Model is the contract every fluid-pressure boundary model satisfies.
//
// The host drives each instance through a fixed lifecycle: construction via
// the registry factory, then ParseParameters exactly once, then Initialize
// exactly once, then any number of FluidPressureGradient calls for the rest
// of the run. The registry enforces none of this; it only resolves names to
// factories.
type Model interface {
	// ParseParameters reads the options this model previously declared. It
	// is called once, after the full schema has been populated and the
	// user's parameter file parsed. Models without options inherit a no-op.
	ParseParameters(v *params.Values) error

	// Initialize is called once after ParseParameters and before any
	// compute call. A failure here is fatal to the run.
	Initialize(ctx context.Context) error

	// FluidPressureGradient computes the gradient of the fluid pressure at
	// each quadrature point, writing one vector per point into the
	// caller-provided, pre-sized out slice.
	//
	// The result typically contains matOut.FluidDensities[q] or
	// matOut.Densities[q], multiplied by the gravity vector. Implementations
	// must be deterministic, must not retain references to in or matOut
	// beyond the call, and must have no side effects beyond filling out.
	FluidPressureGradient(boundary geometry.BoundaryID, in *material.Inputs, matOut *material.Outputs, out []geometry.Vector)
}

// Base carries the per-instance state shared by the built-in models: the
// spatial dimension the instance was created for and the initialization
// guard. Models embed it and, when they override Initialize, call through.
type Base struct {
	Dim         int
	initialized bool
}

// ParseParameters is the default no-op for models without options.
func (b *Base) ParseParameters(v *params.Values) error {
	return nil
}

// Initialize marks the instance ready for compute calls.
func (b *Base) Initialize(ctx context.Context) error {
	b.initialized = true
	return nil
}

// CheckInitialized panics if the instance has not been initialized yet.
// Computing before Initialize is a precondition violation by the host, not a
// recoverable error.
func (b *Base) CheckInitialized() {
	if !b.initialized {
		panic("fluidpressure: FluidPressureGradient called before Initialize")
	}
}

// CheckOutput panics if out is not sized for the inputs' quadrature points
// in the instance's dimension.
func (b *Base) CheckOutput(in *material.Inputs, out []geometry.Vector) {
	if len(out) != in.Points() {
		panic(fmt.Sprintf("fluidpressure: output has %d points, inputs have %d", len(out), in.Points()))
	}
	for q := range out {
		if out[q].Dim() != b.Dim {
			panic(fmt.Sprintf("fluidpressure: output vector %d has dimension %d, model is %dD", q, out[q].Dim(), b.Dim))
		}
	}
}
