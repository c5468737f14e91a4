package constantzero

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguspesce/aspect/internal/boundary/fluidpressure"
	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/material"
	"github.com/aguspesce/aspect/internal/params"
)

func TestDeclaresNoOptions(t *testing.T) {
	r := fluidpressure.NewRegistries()
	require.NoError(t, (&Module{}).Register(r))

	schema := params.NewSchema()
	r.For(2).DeclareAll(schema)

	sec := schema.Lookup(ModelName)
	require.NotNil(t, sec, "a section exists even without options, so documentation lists the model")
	assert.Empty(t, sec.Options())
}

func TestGradientIsZero(t *testing.T) {
	r := fluidpressure.NewRegistries()
	require.NoError(t, (&Module{}).Register(r))

	schema := params.NewSchema()
	r.For(2).DeclareAll(schema)
	vals, err := schema.Lookup(ModelName).Parse(nil)
	require.NoError(t, err)

	m, err := r.For(2).Create(ModelName)
	require.NoError(t, err)
	require.NoError(t, m.ParseParameters(vals))
	require.NoError(t, m.Initialize(context.Background()))

	in := material.NewInputs(3, 2)
	for q := range in.Gravity {
		copy(in.Gravity[q], geometry.Vector{0, -9.81})
	}
	matOut := material.NewOutputs(3)
	for q := range matOut.Densities {
		matOut.Densities[q] = 3300
	}

	// Seed the output with garbage so the test fails if the model skips a
	// point instead of writing zero.
	out := geometry.NewVectors(3, 2)
	for q := range out {
		out[q][0], out[q][1] = 7, 7
	}

	m.FluidPressureGradient("top", in, matOut, out)
	for q := range out {
		assert.Equal(t, geometry.Vector{0, 0}, out[q])
	}
}
