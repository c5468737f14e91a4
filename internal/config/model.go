package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/aguspesce/aspect/internal/geometry"
)

// Model is the parsed, validated representation of a parameter file.
type Model struct {
	// Dimension is the spatial dimension of the run, 2 or 3. It selects
	// which interface-kind registry serves the run.
	Dimension int

	// Slots lists the configured boundary slots, in file order. Each slot
	// gets its own independently owned model instance.
	Slots []*BoundarySlot

	// Evaluation is the optional quadrature data for the evaluation driver.
	Evaluation *Evaluation
}

// BoundarySlot is one 'boundary_fluid_pressure' block: a boundary paired
// with the user's model selection and the raw option blocks.
type BoundarySlot struct {
	// Boundary names the part of the domain boundary this slot covers.
	Boundary geometry.BoundaryID

	// ModelName is the selection key. It must exactly match a registered
	// name, case-sensitively.
	ModelName string

	// Options holds the undecoded body of each 'options' block, keyed by
	// model name. Blocks for models other than the selection are legal and
	// ignored, so users can switch models without deleting options.
	Options map[string]hcl.Body
}

// OptionsFor returns the raw options body for the named model, or nil if
// the user supplied none.
func (s *BoundarySlot) OptionsFor(name string) hcl.Body {
	return s.Options[name]
}

// Evaluation carries per-quadrature-point material data for the evaluation
// driver. It stands in for the host's finite-element assembly loop.
type Evaluation struct {
	Boundary       geometry.BoundaryID
	Densities      []float64
	FluidDensities []float64
	Gravity        []geometry.Vector
}

// Points returns the number of quadrature points.
func (e *Evaluation) Points() int {
	return len(e.Gravity)
}

// validate checks the internal consistency of the model.
func (m *Model) validate() error {
	if !geometry.ValidDim(m.Dimension) {
		return fmt.Errorf("dimension must be 2 or 3, got %d", m.Dimension)
	}
	if len(m.Slots) == 0 {
		return fmt.Errorf("at least one boundary_fluid_pressure block is required")
	}
	seen := make(map[geometry.BoundaryID]struct{}, len(m.Slots))
	for _, slot := range m.Slots {
		if slot.Boundary == "" {
			return fmt.Errorf("boundary_fluid_pressure block is missing a boundary name")
		}
		if slot.ModelName == "" {
			return fmt.Errorf("boundary '%s' does not select a model", slot.Boundary)
		}
		if _, dup := seen[slot.Boundary]; dup {
			return fmt.Errorf("boundary '%s' is configured twice", slot.Boundary)
		}
		seen[slot.Boundary] = struct{}{}
	}
	if e := m.Evaluation; e != nil {
		n := e.Points()
		if n == 0 {
			return fmt.Errorf("evaluation block has no quadrature points")
		}
		for q, g := range e.Gravity {
			if g.Dim() != m.Dimension {
				return fmt.Errorf("evaluation gravity vector %d has %d components, expected %d", q, g.Dim(), m.Dimension)
			}
		}
		if len(e.Densities) != 0 && len(e.Densities) != n {
			return fmt.Errorf("evaluation has %d densities for %d points", len(e.Densities), n)
		}
		if len(e.FluidDensities) != 0 && len(e.FluidDensities) != n {
			return fmt.Errorf("evaluation has %d fluid densities for %d points", len(e.FluidDensities), n)
		}
		if _, ok := seen[e.Boundary]; !ok {
			return fmt.Errorf("evaluation names boundary '%s', which has no boundary_fluid_pressure block", e.Boundary)
		}
	}
	return nil
}
