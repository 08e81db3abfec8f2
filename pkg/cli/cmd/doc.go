// Package cmd provides the command-line interface for dbsetup.
//
// This package contains the root command and its subcommands:
//   - auto: provision the database from a configuration file
//   - interactive: provision the database from details typed at the prompt
//   - init: write a configuration file template
package cmd
