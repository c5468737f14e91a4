// Package config loads the user's parameter file and translates it into a
// format-agnostic model of the run.
//
// The parameter file is HCL. It names the selected fluid-pressure boundary
// model per boundary slot and carries one options block per candidate model;
// only the selected model's block is ever parsed against the schema. The
// quadrature data under 'evaluation' feeds the stand-in evaluation driver.
package config
