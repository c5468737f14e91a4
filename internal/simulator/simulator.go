// Package simulator drives the boundary-model lifecycle the way the host
// framework does: declare the full schema, resolve the user's selections,
// construct exactly one instance per boundary slot, configure and initialize
// it, then query it for the rest of the run.
package simulator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aguspesce/aspect/internal/boundary/fluidpressure"
	"github.com/aguspesce/aspect/internal/config"
	"github.com/aguspesce/aspect/internal/ctxlog"
	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/material"
	"github.com/aguspesce/aspect/internal/params"
)

// Slot is one configured boundary with its active, initialized model.
type Slot struct {
	Boundary  geometry.BoundaryID
	ModelName string
	Model     fluidpressure.Model
}

// Simulator owns the active boundary-model instances for one run.
type Simulator struct {
	runID  uuid.UUID
	dim    int
	cfg    *config.Model
	schema *params.Schema
	slots  []*Slot
}

// New sequences the setup phase for the given run configuration:
// DeclareAll over the matching registry kind, then per slot Create,
// ParseParameters, and Initialize, in that order. Create never implicitly
// configures; every step is explicit here.
//
// Each slot's instance is exclusively owned by the returned Simulator.
func New(ctx context.Context, cfg *config.Model, registries *fluidpressure.Registries) (*Simulator, error) {
	runID := uuid.New()
	logger := ctxlog.FromContext(ctx).With("run_id", runID.String())
	ctx = ctxlog.WithLogger(ctx, logger)

	reg := registries.For(cfg.Dimension)

	// Every candidate declares its options before any selection is read.
	schema := params.NewSchema()
	reg.DeclareAll(schema)
	logger.Debug("Parameter schema declared.", "kind", reg.Kind(), "models", reg.Len())

	sim := &Simulator{
		runID:  runID,
		dim:    cfg.Dimension,
		cfg:    cfg,
		schema: schema,
	}

	for _, slotCfg := range cfg.Slots {
		model, err := reg.Create(slotCfg.ModelName)
		if err != nil {
			return nil, fmt.Errorf("boundary '%s': %w", slotCfg.Boundary, err)
		}

		sec := schema.Lookup(slotCfg.ModelName)
		vals, err := sec.Parse(slotCfg.OptionsFor(slotCfg.ModelName))
		if err != nil {
			return nil, fmt.Errorf("boundary '%s': %w", slotCfg.Boundary, err)
		}
		if err := model.ParseParameters(vals); err != nil {
			return nil, fmt.Errorf("boundary '%s': %w", slotCfg.Boundary, err)
		}

		if err := model.Initialize(ctx); err != nil {
			return nil, fmt.Errorf("boundary '%s': failed to initialize model '%s': %w",
				slotCfg.Boundary, slotCfg.ModelName, err)
		}

		logger.Debug("Boundary model ready.", "boundary", slotCfg.Boundary, "model", slotCfg.ModelName)
		sim.slots = append(sim.slots, &Slot{
			Boundary:  slotCfg.Boundary,
			ModelName: slotCfg.ModelName,
			Model:     model,
		})
	}

	logger.Info("Simulation context ready.", "dimension", cfg.Dimension, "boundaries", len(sim.slots))
	return sim, nil
}

// RunID returns the unique identifier of this run.
func (s *Simulator) RunID() uuid.UUID {
	return s.runID
}

// Slots returns the configured boundary slots in file order.
func (s *Simulator) Slots() []*Slot {
	return s.slots
}

// Slot returns the slot covering the given boundary, or nil.
func (s *Simulator) Slot(boundary geometry.BoundaryID) *Slot {
	for _, slot := range s.slots {
		if slot.Boundary == boundary {
			return slot
		}
	}
	return nil
}

// Evaluate queries one slot's model over the given material data, returning
// a freshly allocated gradient vector per quadrature point.
func (s *Simulator) Evaluate(slot *Slot, in *material.Inputs, matOut *material.Outputs) []geometry.Vector {
	out := geometry.NewVectors(in.Points(), s.dim)
	slot.Model.FluidPressureGradient(slot.Boundary, in, matOut, out)
	return out
}

// Run executes the evaluation driver over the configured quadrature data and
// logs the resulting gradients. Runs without an evaluation block only set up
// and tear down the models.
func (s *Simulator) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("run_id", s.runID.String())

	eval := s.cfg.Evaluation
	if eval == nil {
		logger.Info("No evaluation block configured; nothing to compute.")
		return nil
	}

	slot := s.Slot(eval.Boundary)
	if slot == nil {
		// config validation guarantees the slot exists
		return fmt.Errorf("no boundary slot for '%s'", eval.Boundary)
	}

	in, matOut := s.assemble(eval)
	gradients := s.Evaluate(slot, in, matOut)

	for q, g := range gradients {
		logger.Info("Fluid pressure gradient computed.",
			"boundary", slot.Boundary, "model", slot.ModelName, "point", q, "gradient", []float64(g))
	}
	return nil
}

// assemble builds transient material containers from the evaluation data,
// standing in for the material model and gravity model of the host.
func (s *Simulator) assemble(eval *config.Evaluation) (*material.Inputs, *material.Outputs) {
	n := eval.Points()
	in := material.NewInputs(n, s.dim)
	matOut := material.NewOutputs(n)

	for q := 0; q < n; q++ {
		copy(in.Gravity[q], eval.Gravity[q])
		if len(eval.Densities) > 0 {
			matOut.Densities[q] = eval.Densities[q]
		}
		if len(eval.FluidDensities) > 0 {
			matOut.FluidDensities[q] = eval.FluidDensities[q]
		}
	}
	return in, matOut
}

// Close tears the simulation context down. Models own no external resources
// today, so this only marks the end of the run in the log.
func (s *Simulator) Close(ctx context.Context) {
	logger := ctxlog.FromContext(ctx).With("run_id", s.runID.String())
	logger.Debug("Simulation context closed.", "boundaries", len(s.slots))
	s.slots = nil
}
