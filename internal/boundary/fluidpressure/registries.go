package fluidpressure

import (
	"fmt"

	"github.com/aguspesce/aspect/internal/geometry"
	"github.com/aguspesce/aspect/internal/params"
	"github.com/aguspesce/aspect/internal/plugin"
)

// Module is the interface every compiled-in model package implements to be
// registered during application startup.
type Module interface {
	Register(r *Registries) error
}

// Registration binds a model to its selection name across every supported
// spatial dimension. One Registration covers both the 2D and the 3D
// interface kind; the factory receives the dimension it is instantiated for.
type Registration struct {
	Name        string
	Description string
	Declare     func(*params.Section)
	Factory     func(dim int) Model
}

// Registries holds one independent model registry per supported spatial
// dimension. The two kinds share the registration mechanism but keep
// separate namespaces.
type Registries struct {
	byDim map[int]*plugin.Registry[Model]
}

// NewRegistries creates writable registries for all supported dimensions.
func NewRegistries() *Registries {
	byDim := make(map[int]*plugin.Registry[Model], len(geometry.SupportedDims))
	for _, dim := range geometry.SupportedDims {
		byDim[dim] = plugin.NewRegistry[Model](fmt.Sprintf("fluid pressure boundary models (%dD)", dim))
	}
	return &Registries{byDim: byDim}
}

// For returns the registry serving the given dimension. Asking for an
// unsupported dimension is a programmer error; configuration-supplied
// dimensions are validated before they reach this point.
func (r *Registries) For(dim int) *plugin.Registry[Model] {
	reg, ok := r.byDim[dim]
	if !ok {
		panic(fmt.Sprintf("fluidpressure: no registry for dimension %d", dim))
	}
	return reg
}

// Add registers the model in every dimension variant. The first failing
// dimension aborts; a duplicate name in any variant means the binary is
// misconfigured.
func (r *Registries) Add(reg Registration) error {
	for _, dim := range geometry.SupportedDims {
		dim := dim
		err := r.For(dim).Register(plugin.Entry[Model]{
			Name:        reg.Name,
			Description: reg.Description,
			Declare:     reg.Declare,
			Factory: func() Model {
				return reg.Factory(dim)
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// FreezeAll ends the registration phase for every dimension variant.
func (r *Registries) FreezeAll() {
	for _, reg := range r.byDim {
		reg.Freeze()
	}
}
