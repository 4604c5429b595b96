package lzw

import (
	"fmt"
	"os"

	"BattleFS/internal/domain"
)

// CompressFile reads the whole file at path and compresses it.
func CompressFile(path string) ([]byte, error) {
	data, err := domain.ReadSource(path)
	if err != nil {
		return nil, err
	}
	return Compress(data)
}

// DecompressToFile decodes stream and writes the result to path, replacing
// any existing file.
func DecompressToFile(path string, stream []byte) error {
	data, err := Decompress(stream)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
