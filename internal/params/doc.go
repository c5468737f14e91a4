// Package params implements the configuration schema shared by all boundary
// model candidates.
//
// The Schema is an accumulator: during startup every registered model
// declares its options into its own named Section, so the host can present a
// complete, self-documenting configuration surface before the user has
// chosen a model. Options carry a cty type, a default, a description, and an
// optional validator. After the user's parameter file is loaded, exactly one
// section — the one belonging to the selected model — is parsed against its
// declarations, producing an immutable Values set the active model reads in
// ParseParameters.
//
// Declaring is a startup-phase, single-threaded activity, mirroring model
// registration. Parsing happens once per boundary slot and never mutates the
// schema, so a populated Schema is safe for concurrent reads.
package params
