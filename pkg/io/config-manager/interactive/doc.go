// Package configmanager collects database connection parameters from the
// operator, one line per field, for the interactive setup variant.
//
// Import with an alias for clarity:
//
//	import interactiveconfigmanager "github.com/uelms/dbsetup/pkg/io/config-manager/interactive"
package configmanager
