package lzw

import (
	"os"
	"path/filepath"
	"testing"

	"BattleFS/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestCompressFile_DecompressToFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("The quick brown fox jumps The quick brown fox jumps")
	src := writeFile(t, dir, "fox.txt", content)

	compressed, err := CompressFile(src)
	require.NoError(t, err)

	dst := filepath.Join(dir, "fox.out")
	require.NoError(t, DecompressToFile(dst, compressed))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestCompressFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := CompressFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, ErrIO)

	_, err = CompressFile(writeFile(t, dir, "empty.txt", nil))
	assert.ErrorIs(t, err, ErrIO)

	_, err = CompressFile(dir)
	assert.ErrorIs(t, err, ErrIO, "directories are not regular files")
}

func TestCompressFile_SameSourceRulesAsStore(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.txt", nil)

	_, fileErr := CompressFile(empty)
	_, storeErr := domain.ReadSource(empty)
	require.Error(t, fileErr)
	assert.ErrorIs(t, fileErr, domain.ErrIO)
	assert.Equal(t, storeErr.Error(), fileErr.Error())
}

func TestDecompressToFile_Errors(t *testing.T) {
	dir := t.TempDir()

	err := DecompressToFile(filepath.Join(dir, "out"), []byte{1})
	assert.ErrorIs(t, err, ErrMalformedInput)

	compressed, err := Compress([]byte("abc"))
	require.NoError(t, err)
	err = DecompressToFile(filepath.Join(dir, "no", "such", "dir"), compressed)
	assert.ErrorIs(t, err, ErrIO)
}
