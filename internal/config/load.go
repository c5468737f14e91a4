package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/aguspesce/aspect/internal/ctxlog"
	"github.com/aguspesce/aspect/internal/geometry"
)

// --- HCL file schema ---

type fileSchema struct {
	Simulation *simulationBlock `hcl:"simulation,block"`
}

type simulationBlock struct {
	Dimension  int              `hcl:"dimension"`
	Boundaries []*boundaryBlock `hcl:"boundary_fluid_pressure,block"`
	Evaluation *evaluationBlock `hcl:"evaluation,block"`
}

type boundaryBlock struct {
	Boundary string          `hcl:"boundary"`
	Model    string          `hcl:"model"`
	Options  []*optionsBlock `hcl:"options,block"`
}

type optionsBlock struct {
	Model string   `hcl:"model_name,label"`
	Body  hcl.Body `hcl:",remain"`
}

type evaluationBlock struct {
	Boundary       string      `hcl:"boundary"`
	Densities      []float64   `hcl:"densities,optional"`
	FluidDensities []float64   `hcl:"fluid_densities,optional"`
	Gravity        [][]float64 `hcl:"gravity"`
}

// Load reads and validates the parameter file at path.
func Load(ctx context.Context, path string) (*Model, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file: %w", err)
	}
	return LoadSource(ctx, path, src)
}

// LoadSource parses parameter-file source directly. The filename only
// appears in diagnostics.
func LoadSource(ctx context.Context, filename string, src []byte) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, diags)
	}
	if raw.Simulation == nil {
		return nil, fmt.Errorf("%s: a simulation block is required", filename)
	}

	model, err := translate(raw.Simulation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Debug("Parameter file loaded.", "file", filename, "dimension", model.Dimension, "slots", len(model.Slots))
	return model, nil
}

// translate converts the HCL-specific schema into the agnostic model and
// validates it.
func translate(sim *simulationBlock) (*Model, error) {
	m := &Model{Dimension: sim.Dimension}

	for _, b := range sim.Boundaries {
		slot := &BoundarySlot{
			Boundary:  geometry.BoundaryID(b.Boundary),
			ModelName: b.Model,
			Options:   make(map[string]hcl.Body, len(b.Options)),
		}
		for _, opts := range b.Options {
			if _, dup := slot.Options[opts.Model]; dup {
				return nil, fmt.Errorf("boundary '%s' has two options blocks for model '%s'", b.Boundary, opts.Model)
			}
			slot.Options[opts.Model] = opts.Body
		}
		m.Slots = append(m.Slots, slot)
	}

	if sim.Evaluation != nil {
		eval := &Evaluation{
			Boundary:       geometry.BoundaryID(sim.Evaluation.Boundary),
			Densities:      sim.Evaluation.Densities,
			FluidDensities: sim.Evaluation.FluidDensities,
		}
		for _, g := range sim.Evaluation.Gravity {
			eval.Gravity = append(eval.Gravity, geometry.Vector(g))
		}
		m.Evaluation = eval
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}
