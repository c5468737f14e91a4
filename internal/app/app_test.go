package app_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguspesce/aspect/internal/testutil"
)

func TestEndToEndDensityGradient(t *testing.T) {
	result := testutil.RunApp(t, `
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
	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "Fluid pressure gradient computed.")
	assert.Contains(t, result.LogOutput, "-33000")
	assert.Contains(t, result.LogOutput, "run_id")
}

func TestEndToEndUnknownModel(t *testing.T) {
	result := testutil.RunApp(t, `
simulation {
  dimension = 3
  boundary_fluid_pressure {
    boundary = "bottom"
    model    = "unknown-model"
  }
}
`)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "unknown-model")
	// The diagnostics name every valid selection.
	assert.Contains(t, result.Err.Error(), "constant-gradient")
	assert.Contains(t, result.Err.Error(), "constant-zero")
	assert.Contains(t, result.Err.Error(), "density-gradient")
}

func TestEndToEndInvalidOption(t *testing.T) {
	result := testutil.RunApp(t, `
simulation {
  dimension = 2
  boundary_fluid_pressure {
    boundary = "bottom"
    model    = "density-gradient"
    options "density-gradient" {
      formulation = "gaseous"
    }
  }
}
`)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "formulation")
	assert.Contains(t, result.Err.Error(), "one of")
}

func TestEndToEndMalformedParameterFile(t *testing.T) {
	result := testutil.RunApp(t, "simulation {\n")
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "critical startup error")
}

func TestDescribeListsEveryModelPerKind(t *testing.T) {
	result := testutil.RunApp(t, "", "--describe")
	require.NoError(t, result.Err)

	out := result.LogOutput
	assert.Contains(t, out, "fluid pressure boundary models (2D)")
	assert.Contains(t, out, "fluid pressure boundary models (3D)")
	assert.Contains(t, out, `model "density-gradient"`)
	assert.Contains(t, out, `model "constant-zero"`)
	assert.Contains(t, out, `model "constant-gradient"`)
	assert.Contains(t, out, `option "reference_density"`)
	assert.Contains(t, out, "default 0")
	assert.Contains(t, out, `default "solid"`)
	assert.Contains(t, out, "(no options)")

	// Output is stable: registration order, twice (once per kind).
	assert.Equal(t, 2, strings.Count(out, `model "density-gradient"`))
}
