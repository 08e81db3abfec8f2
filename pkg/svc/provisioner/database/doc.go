// Package databaseprovisioner bootstraps the application schema on a
// MySQL-compatible database.
//
// # Pipeline
//
// A run is linear: acquire connection parameters, coerce the port, open one
// session, create the users and forget_pass tables if they are missing, seed
// the default administrator with INSERT IGNORE, commit once, count the ADMIN
// rows, and close the session. The session is closed on every exit path once
// it has been opened.
//
// Every statement is idempotent, so running the provisioner again against an
// already provisioned database changes nothing.
package databaseprovisioner
