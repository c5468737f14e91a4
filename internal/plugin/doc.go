// Package plugin provides the generic, name-keyed model registry the rest of
// the framework builds on.
//
// A Registry maps a selection name to a description, a parameter-declaration
// hook, and a factory for one abstract interface kind. The same mechanism
// serves every interface kind in the framework; kinds that exist per spatial
// dimension (such as the fluid-pressure boundary models) simply instantiate
// the registry once per dimension.
//
// The registry has a two-phase lifecycle: open for Register calls during
// single-threaded startup, then explicitly frozen before the host reads
// configuration. After Freeze the table is logically immutable and safe for
// concurrent lookups without locking.
package plugin
