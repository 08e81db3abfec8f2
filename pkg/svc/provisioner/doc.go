// Package provisioner provides database provisioning services.
//
// This package contains subpackages for bootstrapping the application database:
//
//   - database: Creates the users and forget_pass tables and seeds the default administrator
//   - errors: Failure taxonomy shared by the provisioner and the command layer
package provisioner
