package fsutil

import "errors"

// Filesystem errors.
var (
	// ErrEmptyOutputPath is returned when a write is requested without a destination.
	ErrEmptyOutputPath = errors.New("output path cannot be empty")

	// ErrFileExists is returned when the destination exists and overwriting was not requested.
	ErrFileExists = errors.New("file already exists")
)
