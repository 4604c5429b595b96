package domain

import (
	"fmt"
	"os"
)

// ReadSource reads the file an object is created from. It must be a regular,
// non-empty file; anything else fails with ErrIO.
func ReadSource(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrIO, path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrIO, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	// el archivo pudo cambiar entre Stat y ReadFile
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrIO, path)
	}
	return data, nil
}
