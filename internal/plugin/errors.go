package plugin

import (
	"fmt"
	"strings"
)

// DuplicateRegistrationError reports two implementations claiming the same
// selection name within one interface kind. The binary is misconfigured and
// must not run; the registry keeps the first entry.
type DuplicateRegistrationError struct {
	Kind string
	Name string
}

// Error implements the error interface for DuplicateRegistrationError.
func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("model '%s' is already registered for %s", e.Name, e.Kind)
}

// UnknownModelError reports a selection name that was never registered. It
// carries the set of valid names for diagnostics.
type UnknownModelError struct {
	Kind  string
	Name  string
	Valid []string
}

// Error implements the error interface for UnknownModelError.
func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("no model named '%s' is registered for %s; valid names are: %s",
		e.Name, e.Kind, strings.Join(e.Valid, ", "))
}

// FrozenRegistryError reports a Register call after the registry was frozen,
// i.e. after the startup registration phase ended.
type FrozenRegistryError struct {
	Kind string
	Name string
}

// Error implements the error interface for FrozenRegistryError.
func (e *FrozenRegistryError) Error() string {
	return fmt.Sprintf("cannot register model '%s': the %s registry is frozen", e.Name, e.Kind)
}
