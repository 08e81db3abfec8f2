// Package io provides utilities for input and output operations related to configuration management.
//
// Subpackages:
//   - config-manager: Connection parameter loading from files, environment and prompts
//   - generator: YAML generation for config templates
//   - scaffolder: Writes the starter railway.yaml
//
// For low-level file I/O operations (writing, path expansion), see the fsutil package.
package io
