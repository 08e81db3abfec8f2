// Package cli provides reusable helpers for command wiring and execution.
//
// This package is organized into subpackages for different functionality:
//
//   - cli/cmd: Cobra commands (auto, interactive, init)
//   - cli/flags: Flag handling utilities including timing detection
//   - cli/ui: User interface components (confirm, errorhandler)
//
// Commands resolve their collaborators from the dbsetup runtime container,
// so tests can swap the connector and the logger.
package cli
