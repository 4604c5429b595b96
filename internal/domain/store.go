package domain

import (
	"fmt"
	"io"
	"log/slog"
)

// Store indexes compressed files by filename. Its totals always equal the
// sums over the live entries; a failed Create, Read or Delete leaves them
// and the index untouched.
//
// Store is not safe for concurrent use, see StoreSession.
type Store struct {
	name    string
	objects ObjectRepository
	codec   Codec
	logger  *slog.Logger

	totalFiles          int64
	totalCompressedSize int64
	totalOriginalSize   int64
}

type Stats struct {
	Files          int64 `json:"files"`
	CompressedSize int64 `json:"compressed_size"`
	OriginalSize   int64 `json:"original_size"`
}

func NewStore(name string, objects ObjectRepository, codec Codec, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		name:    name,
		objects: objects,
		codec:   codec,
		logger:  logger.With("store", name),
	}
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) Stats() Stats {
	return Stats{
		Files:          s.totalFiles,
		CompressedSize: s.totalCompressedSize,
		OriginalSize:   s.totalOriginalSize,
	}
}

// Create reads the file at filename, compresses it and indexes it under
// filename.
func (s *Store) Create(filename string) error {
	if s.objects == nil {
		return ErrClosed
	}
	if _, found := s.objects.Get(filename); found {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, filename)
	}

	data, err := ReadSource(filename)
	if err != nil {
		return err
	}

	compressed, err := s.codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress %s: %w", filename, err)
	}

	object := NewCompressedObject(compressed, data)
	s.objects.Save(filename, object)
	s.totalFiles++
	s.totalCompressedSize += object.CompressedSize()
	s.totalOriginalSize += object.OriginalSize()

	s.logger.Debug("object created",
		"file", filename,
		"original_size", object.OriginalSize(),
		"compressed_size", object.CompressedSize())
	return nil
}

// Read decompresses filename into w. Nothing is written unless the stream
// decodes back to exactly the original bytes.
func (s *Store) Read(filename string, w io.Writer) error {
	if s.objects == nil {
		return ErrClosed
	}
	object, found := s.objects.Get(filename)
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, filename)
	}

	data, err := s.codec.Decompress(object.Data())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, filename, err)
	}
	if !object.Matches(data) {
		return fmt.Errorf("%w: %s: decoded %d bytes do not match the original %d bytes", ErrDecode, filename, len(data), object.OriginalSize())
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, filename, err)
	}
	return nil
}

// Delete removes filename from the index and drops its compressed buffer.
func (s *Store) Delete(filename string) error {
	if s.objects == nil {
		return ErrClosed
	}
	object, found := s.objects.Get(filename)
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, filename)
	}

	if s.totalFiles < 1 ||
		s.totalCompressedSize < object.CompressedSize() ||
		s.totalOriginalSize < object.OriginalSize() {
		return fmt.Errorf("%w: removing %s", ErrInconsistent, filename)
	}
	if !s.objects.Delete(filename) {
		return fmt.Errorf("%w: %s", ErrNotFound, filename)
	}

	s.totalFiles--
	s.totalCompressedSize -= object.CompressedSize()
	s.totalOriginalSize -= object.OriginalSize()
	object.release()

	s.logger.Debug("object deleted", "file", filename)
	return nil
}

// Stat returns the sizes recorded for filename.
func (s *Store) Stat(filename string) (ListingEntry, bool) {
	if s.objects == nil {
		return ListingEntry{}, false
	}
	object, found := s.objects.Get(filename)
	if !found {
		return ListingEntry{}, false
	}
	return ListingEntry{
		Name:           filename,
		OriginalSize:   object.OriginalSize(),
		CompressedSize: object.CompressedSize(),
	}, true
}

// List returns every entry in ascending filename order along with the totals.
func (s *Store) List() Listing {
	listing := Listing{
		Name:  s.name,
		Stats: s.Stats(),
	}
	if s.objects == nil {
		return listing
	}
	listing.Entries = make([]ListingEntry, 0, s.objects.Len())
	s.objects.Each(func(name string, object *CompressedObject) bool {
		listing.Entries = append(listing.Entries, ListingEntry{
			Name:           name,
			OriginalSize:   object.OriginalSize(),
			CompressedSize: object.CompressedSize(),
		})
		return true
	})
	return listing
}

// Close releases the index, which drops every object, and then the name.
func (s *Store) Close() {
	if s.objects == nil {
		return
	}
	s.objects.Each(func(_ string, object *CompressedObject) bool {
		object.release()
		return true
	})
	s.objects.Close()
	s.objects = nil
	s.name = ""
	s.totalFiles, s.totalCompressedSize, s.totalOriginalSize = 0, 0, 0
}
