// Package config loads hillclimb run settings from YAML or HCL files.
//
// A file may set any subset of the fields; the rest keep the values from
// Default. Unknown keys are rejected in both formats so typos surface
// instead of being ignored.
//
// Supported extensions:
//
//   - .yaml, .yml: gopkg.in/yaml.v3 in strict (KnownFields) mode.
//   - .hcl:        HCL native syntax via hclparse and gohcl.
//   - .json:       HCL's JSON syntax, same schema as .hcl.
//
// Example YAML:
//
//	input: input/day12.txt
//	frontier: btree
//	reverse: true
//	log_level: debug
//
// The same settings in HCL:
//
//	input     = "input/day12.txt"
//	frontier  = "btree"
//	reverse   = true
//	log_level = "debug"
package config
