package service

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"BattleFS/internal/domain"
	"BattleFS/internal/platform/codec/lzw"
	"BattleFS/internal/platform/config"
	"BattleFS/internal/platform/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type services struct {
	session *domain.StoreSession
	init    *InitStoreService
	create  *CreateObjectService
	read    *ReadObjectService
	delete  *DeleteObjectService
	list    *ListObjectsService
	load    *LoadDirectoryService
	persist *PersistStoreService
}

func newServices(t *testing.T, mode lzw.Mode) services {
	t.Helper()
	cfg := config.Config{StoreName: "default", IndexOrder: 4}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := domain.NewStoreSession(repository.NewObjectRepositoryFactory(cfg), lzw.NewCodec(mode), logger)
	t.Cleanup(session.Close)
	return services{
		session: session,
		init:    NewInitStoreService(session, cfg),
		create:  NewCreateObjectService(session),
		read:    NewReadObjectService(session),
		delete:  NewDeleteObjectService(session),
		list:    NewListObjectsService(session),
		load:    NewLoadDirectoryService(session, logger),
		persist: NewPersistStoreService(session),
	}
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestServices_RequireInit(t *testing.T) {
	s := newServices(t, lzw.ModeSymmetric)

	_, err := s.create.Execute(CreateObjectCommand{Path: "a.txt"})
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
	assert.ErrorIs(t, s.read.Execute(ReadObjectQuery{Name: "a.txt", Output: io.Discard}), domain.ErrNotInitialized)
	_, err = s.delete.Execute(DeleteObjectCommand{Name: "a.txt"})
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
	_, err = s.list.Execute()
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	res, err := s.load.Execute(LoadDirectoryCommand{Dir: t.TempDir()})
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
	assert.Equal(t, -1, res.Loaded)
}

func TestInitStoreService_DefaultName(t *testing.T) {
	s := newServices(t, lzw.ModeSymmetric)

	assert.Equal(t, "default", s.init.Execute(InitStoreCommand{}).Name)
	assert.Equal(t, "battle", s.init.Execute(InitStoreCommand{Name: "battle"}).Name)

	listing, err := s.list.Execute()
	require.NoError(t, err)
	assert.Equal(t, "battle", listing.Name)
}

func TestCreateThenRead_RepeatedByteFile(t *testing.T) {
	s := newServices(t, lzw.ModeSymmetric)
	s.init.Execute(InitStoreCommand{})
	path := writeFile(t, t.TempDir(), "a.txt", bytes.Repeat([]byte("a"), 10))

	res, err := s.create.Execute(CreateObjectCommand{Path: path})
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Entry.OriginalSize)
	assert.Equal(t, int64(8), res.Entry.CompressedSize)

	var out bytes.Buffer
	require.NoError(t, s.read.Execute(ReadObjectQuery{Name: path, Output: &out}))
	assert.Equal(t, bytes.Repeat([]byte("a"), 10), out.Bytes())

	listing, err := s.list.Execute()
	require.NoError(t, err)
	assert.Equal(t, int64(1), listing.Stats.Files)
	require.Len(t, listing.Entries, 1)
	assert.Equal(t, path, listing.Entries[0].Name)
}

func TestRead_LiteralDecoderRejectsLearnedCodes(t *testing.T) {
	s := newServices(t, lzw.ModeLiteral)
	s.init.Execute(InitStoreCommand{})
	dir := t.TempDir()
	runs := writeFile(t, dir, "runs.txt", bytes.Repeat([]byte("a"), 10))
	plain := writeFile(t, dir, "plain.txt", []byte("abcdefg"))

	_, err := s.create.Execute(CreateObjectCommand{Path: runs})
	require.NoError(t, err)
	_, err = s.create.Execute(CreateObjectCommand{Path: plain})
	require.NoError(t, err)

	var out bytes.Buffer
	err = s.read.Execute(ReadObjectQuery{Name: runs, Output: &out})
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.ErrorIs(t, err, lzw.ErrInvalidCode)
	assert.Zero(t, out.Len())

	require.NoError(t, s.read.Execute(ReadObjectQuery{Name: plain, Output: &out}))
	assert.Equal(t, "abcdefg", out.String())
}

func TestCreate_DuplicateKeepsTotals(t *testing.T) {
	s := newServices(t, lzw.ModeSymmetric)
	s.init.Execute(InitStoreCommand{})
	path := writeFile(t, t.TempDir(), "a.txt", []byte("hello hello hello"))

	_, err := s.create.Execute(CreateObjectCommand{Path: path})
	require.NoError(t, err)
	before, err := s.list.Execute()
	require.NoError(t, err)

	_, err = s.create.Execute(CreateObjectCommand{Path: path})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	after, err := s.list.Execute()
	require.NoError(t, err)
	assert.Equal(t, before.Stats, after.Stats)
}

func TestDelete_NotFoundKeepsState(t *testing.T) {
	s := newServices(t, lzw.ModeSymmetric)
	s.init.Execute(InitStoreCommand{})
	path := writeFile(t, t.TempDir(), "a.txt", []byte("content"))
	_, err := s.create.Execute(CreateObjectCommand{Path: path})
	require.NoError(t, err)
	before, _ := s.list.Execute()

	_, err = s.delete.Execute(DeleteObjectCommand{Name: "nope.txt"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, _ := s.list.Execute()
	assert.Equal(t, before, after)

	res, err := s.delete.Execute(DeleteObjectCommand{Name: path})
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Entry.OriginalSize)
	after, _ = s.list.Execute()
	assert.Equal(t, domain.Stats{}, after.Stats)
	assert.Empty(t, after.Entries)
}

func TestTotalsAfterManyCreatesAndDeletes(t *testing.T) {
	s := newServices(t, lzw.ModeSymmetric)
	s.init.Execute(InitStoreCommand{})
	dir := t.TempDir()

	var paths []string
	for i := 0; i < 40; i++ {
		content := strings.Repeat("Lorem ipsum dolor sit amet ", i+1)
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("lorem_%02d.txt", i), []byte(content)))
		_, err := s.create.Execute(CreateObjectCommand{Path: paths[i]})
		require.NoError(t, err)
	}
	for i := 0; i < 40; i += 3 {
		_, err := s.delete.Execute(DeleteObjectCommand{Name: paths[i]})
		require.NoError(t, err)
	}

	listing, err := s.list.Execute()
	require.NoError(t, err)
	var files, original, compressed int64
	for _, e := range listing.Entries {
		files++
		original += e.OriginalSize
		compressed += e.CompressedSize

		var out bytes.Buffer
		require.NoError(t, s.read.Execute(ReadObjectQuery{Name: e.Name, Output: &out}))
		assert.Equal(t, e.OriginalSize, int64(out.Len()))
	}
	assert.Equal(t, domain.Stats{Files: files, OriginalSize: original, CompressedSize: compressed}, listing.Stats)
	assert.Equal(t, int64(26), files)

	ratio, err := listing.Ratio()
	require.NoError(t, err)
	assert.Greater(t, ratio, 50.0)
}

func TestLoadDirectoryService(t *testing.T) {
	s := newServices(t, lzw.ModeSymmetric)
	s.init.Execute(InitStoreCommand{})

	dir := t.TempDir()
	writeFile(t, dir, "test_0001.txt", []byte("REPETITIVE_CONTENT_REPETITIVE_CONTENT_"))
	writeFile(t, dir, "test_0002.txt", []byte("0101010101010101 "))
	writeFile(t, dir, "empty.txt", nil)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	writeFile(t, filepath.Join(dir, "nested"), "skipped.txt", []byte("not walked"))

	res, err := s.load.Execute(LoadDirectoryCommand{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Loaded)
	require.Len(t, res.Failed, 1)
	assert.ErrorIs(t, res.Failed[filepath.Join(dir, "empty.txt")], domain.ErrIO)

	// segunda carga: todos duplicados, el lote no se corta
	res, err = s.load.Execute(LoadDirectoryCommand{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Loaded)
	assert.Len(t, res.Failed, 3)
	assert.ErrorIs(t, res.Failed[filepath.Join(dir, "test_0001.txt")], domain.ErrDuplicateKey)

	listing, err := s.list.Execute()
	require.NoError(t, err)
	assert.Equal(t, int64(2), listing.Stats.Files)
}

func TestLoadDirectoryService_DirectoryFailures(t *testing.T) {
	s := newServices(t, lzw.ModeSymmetric)
	s.init.Execute(InitStoreCommand{})
	dir := t.TempDir()
	file := writeFile(t, dir, "file.txt", []byte("x"))

	res, err := s.load.Execute(LoadDirectoryCommand{Dir: filepath.Join(dir, "missing")})
	assert.ErrorIs(t, err, domain.ErrNotADirectory)
	assert.Equal(t, -1, res.Loaded)

	res, err = s.load.Execute(LoadDirectoryCommand{Dir: file})
	assert.ErrorIs(t, err, domain.ErrNotADirectory)
	assert.Equal(t, -1, res.Loaded)
}

func TestPersistStoreService(t *testing.T) {
	s := newServices(t, lzw.ModeSymmetric)
	assert.ErrorIs(t, s.persist.Save("snap"), domain.ErrNotInitialized)

	s.init.Execute(InitStoreCommand{})
	assert.ErrorIs(t, s.persist.Save("snap"), domain.ErrNotImplemented)
	assert.ErrorIs(t, s.persist.Load("snap"), domain.ErrNotImplemented)
}
