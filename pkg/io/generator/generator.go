// Package generator defines the interface shared by configuration file generators.
package generator

// Generator renders a model into file content.
// The Options type parameter allows each implementation to define its own options structure.
type Generator[T any, Options any] interface {
	Generate(model T, opts Options) (string, error)
}
