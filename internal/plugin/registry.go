package plugin

import (
	"fmt"
	"sort"

	"github.com/aguspesce/aspect/internal/params"
)

// Entry binds a selection name to everything the host needs to offer and
// construct one model implementation.
type Entry[T any] struct {
	// Name is the unique selection key within the registry's kind.
	Name string

	// Description is listed in generated parameter documentation.
	Description string

	// Declare registers the implementation's options into its schema
	// section. A nil Declare means the implementation takes no options.
	Declare func(*params.Section)

	// Factory constructs a fresh, not-yet-configured instance. Ownership
	// transfers fully to the caller.
	Factory func() T
}

// Registry is an ordered, name-keyed table of model entries for a single
// interface kind.
type Registry[T any] struct {
	kind    string
	entries map[string]*Entry[T]
	order   []string
	frozen  bool
}

// NewRegistry returns an empty, writable registry for the named interface
// kind. The kind only appears in error messages and logs.
func NewRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		entries: make(map[string]*Entry[T]),
	}
}

// Kind returns the interface kind this registry serves.
func (r *Registry[T]) Kind() string {
	return r.kind
}

// Register inserts a new entry. It fails with DuplicateRegistrationError if
// the name is already taken (the first entry stays in place) and with
// FrozenRegistryError after Freeze. An entry without a factory is a
// programmer error.
func (r *Registry[T]) Register(e Entry[T]) error {
	if e.Name == "" {
		panic(fmt.Sprintf("plugin: entry registered for %s has no name", r.kind))
	}
	if e.Factory == nil {
		panic(fmt.Sprintf("plugin: entry '%s' registered for %s has no factory", e.Name, r.kind))
	}
	if r.frozen {
		return &FrozenRegistryError{Kind: r.kind, Name: e.Name}
	}
	if _, exists := r.entries[e.Name]; exists {
		return &DuplicateRegistrationError{Kind: r.kind, Name: e.Name}
	}
	entry := e
	r.entries[e.Name] = &entry
	r.order = append(r.order, e.Name)
	return nil
}

// Freeze ends the registration phase. After Freeze the registry is read-only
// and safe for concurrent lookups. Freezing twice is harmless.
func (r *Registry[T]) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registration phase has ended.
func (r *Registry[T]) Frozen() bool {
	return r.frozen
}

// DeclareAll invokes every entry's declare hook in registration order, each
// writing into its own namespaced schema section. Entries without a declare
// hook still get a section, so documentation lists every candidate.
func (r *Registry[T]) DeclareAll(schema *params.Schema) {
	for _, name := range r.order {
		e := r.entries[name]
		sec := schema.Section(e.Name, e.Description)
		if e.Declare != nil {
			e.Declare(sec)
		}
	}
}

// Create looks up name and invokes its factory. On a miss it fails with
// UnknownModelError and constructs nothing. The returned instance has not
// parsed its parameters and is not initialized.
func (r *Registry[T]) Create(name string) (T, error) {
	e, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, &UnknownModelError{Kind: r.kind, Name: name, Valid: r.Names()}
	}
	return e.Factory(), nil
}

// Names returns the registered selection names, sorted for stable
// diagnostics.
func (r *Registry[T]) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return len(r.order)
}
