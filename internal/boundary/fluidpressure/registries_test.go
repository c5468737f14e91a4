package fluidpressure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/material"
	"github.com/aguspesce/aspect/internal/params"
	"github.com/aguspesce/aspect/internal/plugin"
)

type nullModel struct {
	Base
}

func (m *nullModel) FluidPressureGradient(boundary geometry.BoundaryID, in *material.Inputs, matOut *material.Outputs, out []geometry.Vector) {
	m.CheckInitialized()
	for q := range out {
		out[q].Zero()
	}
}

func TestAddRegistersEveryDimensionVariant(t *testing.T) {
	r := NewRegistries()
	err := r.Add(Registration{
		Name:        "null",
		Description: "does nothing",
		Factory: func(dim int) Model {
			return &nullModel{Base: Base{Dim: dim}}
		},
	})
	require.NoError(t, err)

	for _, dim := range geometry.SupportedDims {
		m, err := r.For(dim).Create("null")
		require.NoError(t, err)
		assert.Equal(t, dim, m.(*nullModel).Dim)
	}
}

func TestDimensionVariantsAreIndependentNamespaces(t *testing.T) {
	r := NewRegistries()

	// Registering directly into one kind leaves the other kind empty.
	err := r.For(2).Register(plugin.Entry[Model]{
		Name:    "flatland-only",
		Factory: func() Model { return &nullModel{Base: Base{Dim: 2}} },
	})
	require.NoError(t, err)

	_, err = r.For(2).Create("flatland-only")
	assert.NoError(t, err)
	_, err = r.For(3).Create("flatland-only")
	var unknownErr *plugin.UnknownModelError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestAddDuplicateName(t *testing.T) {
	r := NewRegistries()
	reg := Registration{
		Name:    "null",
		Factory: func(dim int) Model { return &nullModel{Base: Base{Dim: dim}} },
	}
	require.NoError(t, r.Add(reg))

	err := r.Add(reg)
	var dupErr *plugin.DuplicateRegistrationError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "null", dupErr.Name)
}

func TestUnsupportedDimensionPanics(t *testing.T) {
	r := NewRegistries()
	assert.Panics(t, func() { r.For(4) })
}

func TestFreezeAll(t *testing.T) {
	r := NewRegistries()
	require.NoError(t, r.Add(Registration{
		Name:    "null",
		Factory: func(dim int) Model { return &nullModel{Base: Base{Dim: dim}} },
	}))
	r.FreezeAll()

	err := r.Add(Registration{
		Name:    "late",
		Factory: func(dim int) Model { return &nullModel{Base: Base{Dim: dim}} },
	})
	var frozenErr *plugin.FrozenRegistryError
	assert.ErrorAs(t, err, &frozenErr)
}

func TestBaseLifecycle(t *testing.T) {
	m := &nullModel{Base: Base{Dim: 2}}

	// Default ParseParameters is a no-op.
	require.NoError(t, m.ParseParameters(&params.Values{}))

	// Computing before Initialize is a precondition violation.
	in := material.NewInputs(1, 2)
	matOut := material.NewOutputs(1)
	out := geometry.NewVectors(1, 2)
	assert.Panics(t, func() {
		m.FluidPressureGradient("top", in, matOut, out)
	})

	require.NoError(t, m.Initialize(context.Background()))
	assert.NotPanics(t, func() {
		m.FluidPressureGradient("top", in, matOut, out)
	})
}
