// Package svc provides service layer components for dbsetup.
//
// This package contains the business logic layer that coordinates between
// the CLI commands and the database.
//
// Subpackages:
//   - connector: Database sessions backed by the MySQL driver
//   - provisioner: Schema provisioning and the failure taxonomy
package svc
