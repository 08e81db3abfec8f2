package configmanager

import (
	"github.com/uelms/dbsetup/pkg/utils/timer"
)

// LoadOptions configures how connection parameters are loaded.
type LoadOptions struct {
	// Timer enables timing output in notifications when provided.
	Timer timer.Timer
	// Silent suppresses loading notifications when true. Interactive prompts are
	// always written since the operator has to see them to answer.
	Silent bool
}

// ConfigManager produces a configuration record from one source: a config file,
// the environment, or the operator at a terminal.
type ConfigManager[T any] interface {
	// Load loads the configuration with the specified options.
	// Returns the loaded config, either freshly loaded or previously cached.
	Load(opts LoadOptions) (*T, error)
}
