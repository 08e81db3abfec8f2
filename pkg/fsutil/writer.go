package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// WriteFile writes content to output, creating missing parent directories.
// An existing file is only replaced when force is true; otherwise ErrFileExists is returned.
// The file is created readable by the owner only since it may hold credentials.
func WriteFile(content string, output string, force bool) error {
	if output == "" {
		return ErrEmptyOutputPath
	}

	output = filepath.Clean(output)

	if !force {
		_, err := os.Stat(output)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, output)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check file %s: %w", output, err)
		}
	}

	dir := filepath.Dir(output)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = os.WriteFile(output, []byte(content), filePerm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return nil
}
