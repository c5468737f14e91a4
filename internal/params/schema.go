package params

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Option describes a single declared configuration option.
type Option struct {
	// Name is the option's attribute name inside its section.
	Name string

	// Type is the value type the option accepts. User-supplied values are
	// converted to this type; values that don't convert are rejected.
	Type cty.Type

	// Default is used when the user does not set the option. Every option
	// must have a non-null default so generated documentation can state one.
	Default cty.Value

	// Description is an optional documentation string.
	Description string

	// Validate, if non-nil, runs against the final (converted) value.
	Validate func(cty.Value) error
}

// Section accumulates the options declared under one namespace, scoped to a
// model's selection name. Options from different candidate models live in
// different sections and never collide.
type Section struct {
	name        string
	description string
	opts        map[string]*Option
	order       []string
}

// Name returns the section's namespace, i.e. the model selection name.
func (s *Section) Name() string {
	return s.name
}

// Description returns the human-readable description of the section's model.
func (s *Section) Description() string {
	return s.description
}

// Declare adds an option to the section. Declaring the same option name
// twice within one section is a programmer error, as is an option without a
// usable default.
func (s *Section) Declare(opt Option) {
	if opt.Name == "" {
		panic(fmt.Sprintf("params: option in section '%s' has no name", s.name))
	}
	if opt.Default == cty.NilVal || opt.Default.IsNull() {
		panic(fmt.Sprintf("params: option '%s' in section '%s' has no default", opt.Name, s.name))
	}
	if _, exists := s.opts[opt.Name]; exists {
		panic(fmt.Sprintf("params: option '%s' already declared in section '%s'", opt.Name, s.name))
	}
	o := opt
	s.opts[opt.Name] = &o
	s.order = append(s.order, opt.Name)
}

// Options returns the section's options in declaration order.
func (s *Section) Options() []*Option {
	out := make([]*Option, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.opts[name])
	}
	return out
}

// Schema is the accumulator passed to every candidate model's declare hook.
type Schema struct {
	sections map[string]*Section
	order    []string
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{sections: make(map[string]*Section)}
}

// Section returns the section for the given namespace, creating it on first
// use. Repeated calls with the same name return the same section, so
// declaring the full schema is idempotent at the section level.
func (s *Schema) Section(name, description string) *Section {
	if sec, ok := s.sections[name]; ok {
		return sec
	}
	sec := &Section{
		name:        name,
		description: description,
		opts:        make(map[string]*Option),
	}
	s.sections[name] = sec
	s.order = append(s.order, name)
	return sec
}

// Lookup returns the section for name, or nil if no model declared one.
func (s *Schema) Lookup(name string) *Section {
	return s.sections[name]
}

// Sections returns all sections in the order they were first created, which
// follows model registration order. That keeps generated documentation
// stable across runs of the same binary.
func (s *Schema) Sections() []*Section {
	out := make([]*Section, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.sections[name])
	}
	return out
}
