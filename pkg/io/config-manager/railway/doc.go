// Package configmanager loads database connection parameters from a Railway
// config file for the file-backed setup variant.
//
// Sources, lowest to highest priority: config file (railway.yaml, .yml, .json or
// .toml, searched in the working directory and ~/.uelms), RAILWAY_* environment
// variables, then command flags. ${VAR} references inside values other than the
// password are expanded from the environment. Every field must be filled in and
// must not hold its YOUR_<FIELD>_HERE placeholder. A file named explicitly must
// exist.
//
// Note: This package shares the "configmanager" package name with its parent directory
// (pkg/io/config-manager). Import with an alias for clarity:
//
//	import railwayconfigmanager "github.com/uelms/dbsetup/pkg/io/config-manager/railway"
package configmanager
