// Package configmanager provides acquisition of database connection parameters.
//
// Two strategies implement the shared ConfigManager interface:
//   - railway: reads a railway.yaml/json/toml config file with RAILWAY_* environment
//     overrides and rejects fields still holding their YOUR_<FIELD>_HERE placeholder
//   - interactive: prompts the operator for each field on the terminal
package configmanager
