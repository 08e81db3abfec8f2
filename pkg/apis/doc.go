// Package apis provides API type definitions for dbsetup resources.
//
// This package contains versioned API types:
//
//   - connection: Database connection parameters read from the operator or a config file
//
// The API types are designed to be decoded from YAML, JSON or TOML config files
// and from environment variables.
package apis
