// Package connection provides database connection API types.
//
// This package contains versioned API types for dbsetup connection configuration:
//
//   - v1alpha1: Current API version for connection parameters
//
// The connection types define the configuration format used in railway.yaml files.
package connection
