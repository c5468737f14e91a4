package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguspesce/aspect/internal/boundary/fluidpressure"
	"github.com/aguspesce/aspect/internal/config"
	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/material"
	"github.com/aguspesce/aspect/internal/params"
	"github.com/aguspesce/aspect/internal/plugin"
	"github.com/aguspesce/aspect/modules/constantzero"
	"github.com/aguspesce/aspect/modules/densitygradient"
)

func newRegistries(t *testing.T) *fluidpressure.Registries {
	t.Helper()
	r := fluidpressure.NewRegistries()
	require.NoError(t, (&densitygradient.Module{}).Register(r))
	require.NoError(t, (&constantzero.Module{}).Register(r))
	r.FreezeAll()
	return r
}

func loadConfig(t *testing.T, src string) *config.Model {
	t.Helper()
	m, err := config.LoadSource(context.Background(), "test.hcl", []byte(src))
	require.NoError(t, err)
	return m
}

func TestFullLifecycle(t *testing.T) {
	cfg := loadConfig(t, `
simulation {
  dimension = 3
  boundary_fluid_pressure {
    boundary = "bottom"
    model    = "density-gradient"
    options "density-gradient" {
      reference_density = 3300
    }
  }
  evaluation {
    boundary  = "bottom"
    densities = [3300]
    gravity   = [[0, 0, -10]]
  }
}
`)

	ctx := context.Background()
	sim, err := New(ctx, cfg, newRegistries(t))
	require.NoError(t, err)
	defer sim.Close(ctx)

	require.Len(t, sim.Slots(), 1)
	slot := sim.Slot("bottom")
	require.NotNil(t, slot)
	assert.Equal(t, "density-gradient", slot.ModelName)

	in := material.NewInputs(1, 3)
	copy(in.Gravity[0], geometry.Vector{0, 0, -10})
	matOut := material.NewOutputs(1)
	matOut.Densities[0] = 3300

	out := sim.Evaluate(slot, in, matOut)
	require.Len(t, out, 1)
	assert.Equal(t, geometry.Vector{0, 0, -33000}, out[0])

	require.NoError(t, sim.Run(ctx))
}

func TestUnknownModelFailsBeforeAnyInstanceExists(t *testing.T) {
	cfg := loadConfig(t, `
simulation {
  dimension = 3
  boundary_fluid_pressure {
    boundary = "bottom"
    model    = "unknown-model"
  }
}
`)

	sim, err := New(context.Background(), cfg, newRegistries(t))
	assert.Nil(t, sim)

	var unknownErr *plugin.UnknownModelError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "unknown-model", unknownErr.Name)
	assert.Equal(t, []string{"constant-zero", "density-gradient"}, unknownErr.Valid)
}

func TestInvalidOptionFailsSetup(t *testing.T) {
	cfg := loadConfig(t, `
simulation {
  dimension = 2
  boundary_fluid_pressure {
    boundary = "bottom"
    model    = "density-gradient"
    options "density-gradient" {
      reference_density = -5
    }
  }
}
`)

	_, err := New(context.Background(), cfg, newRegistries(t))
	var optErr *params.InvalidOptionError
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "reference_density", optErr.Option)
}

func TestSlotsOwnIndependentInstances(t *testing.T) {
	// Two slots select the same model with different options; configuring
	// one must not leak into the other.
	cfg := loadConfig(t, `
simulation {
  dimension = 2
  boundary_fluid_pressure {
    boundary = "bottom"
    model    = "density-gradient"
    options "density-gradient" {
      reference_density = 3300
    }
  }
  boundary_fluid_pressure {
    boundary = "top"
    model    = "density-gradient"
    options "density-gradient" {
      reference_density = 1000
    }
  }
}
`)

	ctx := context.Background()
	sim, err := New(ctx, cfg, newRegistries(t))
	require.NoError(t, err)
	defer sim.Close(ctx)

	bottom, top := sim.Slot("bottom"), sim.Slot("top")
	require.NotNil(t, bottom)
	require.NotNil(t, top)
	assert.NotSame(t, bottom.Model, top.Model)

	in := material.NewInputs(1, 2)
	copy(in.Gravity[0], geometry.Vector{0, -1})
	matOut := material.NewOutputs(1)

	assert.Equal(t, geometry.Vector{0, -3300}, sim.Evaluate(bottom, in, matOut)[0])
	assert.Equal(t, geometry.Vector{0, -1000}, sim.Evaluate(top, in, matOut)[0])
}

func TestOptionsForOtherModelsAreIgnored(t *testing.T) {
	cfg := loadConfig(t, `
simulation {
  dimension = 2
  boundary_fluid_pressure {
    boundary = "bottom"
    model    = "constant-zero"
    options "density-gradient" {
      reference_density = 3300
    }
  }
}
`)

	ctx := context.Background()
	sim, err := New(ctx, cfg, newRegistries(t))
	require.NoError(t, err)
	defer sim.Close(ctx)

	in := material.NewInputs(1, 2)
	copy(in.Gravity[0], geometry.Vector{0, -10})
	matOut := material.NewOutputs(1)
	matOut.Densities[0] = 3300

	assert.Equal(t, geometry.Vector{0, 0}, sim.Evaluate(sim.Slot("bottom"), in, matOut)[0])
}

func TestRunIDsAreUnique(t *testing.T) {
	cfg := loadConfig(t, `
simulation {
  dimension = 2
  boundary_fluid_pressure {
    boundary = "bottom"
    model    = "constant-zero"
  }
}
`)

	ctx := context.Background()
	regs := newRegistries(t)
	sim1, err := New(ctx, cfg, regs)
	require.NoError(t, err)
	sim2, err := New(ctx, cfg, regs)
	require.NoError(t, err)

	assert.NotEqual(t, sim1.RunID(), sim2.RunID())
}
