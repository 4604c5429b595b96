package domain

import "errors"

var (
	// ErrIO is returned when a source file cannot be opened or read, is not a
	// regular file or is empty, and when the output sink fails.
	ErrIO = errors.New("io error")

	// ErrDuplicateKey is returned by Create for a filename already indexed.
	ErrDuplicateKey = errors.New("file already exists")

	// ErrNotFound is returned by Read and Delete for a filename not indexed.
	ErrNotFound = errors.New("file not found")

	// ErrDecode is returned by Read when the stored stream can't be decoded
	// back to the original bytes.
	ErrDecode = errors.New("decode error")

	// ErrDivisionGuard is returned when asking for a compression ratio with
	// no stored bytes.
	ErrDivisionGuard = errors.New("no bytes stored")

	// ErrInconsistent reports totals that don't cover an entry being removed.
	ErrInconsistent = errors.New("store totals out of sync")

	// ErrNotADirectory is returned when a batch load is pointed at something
	// that is not a readable directory.
	ErrNotADirectory = errors.New("not a directory")

	ErrClosed = errors.New("store is closed")

	ErrNotInitialized = errors.New("store not initialized")

	ErrNotImplemented = errors.New("not implemented")
)
