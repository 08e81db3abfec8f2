// Package di wires the command dependencies with samber/do.
//
// Every command invocation gets a fresh injector built from the runtime's
// modules, so state never leaks between runs.
package di
