package lzw

import (
	"errors"

	"BattleFS/internal/domain"
)

var (
	// ErrEmptyInput is returned when compressing a zero-length buffer.
	ErrEmptyInput = errors.New("lzw: empty input")

	// ErrMalformedInput is returned when a code stream is empty or its byte
	// length is not a multiple of the code width.
	ErrMalformedInput = errors.New("lzw: malformed code stream")

	// ErrInvalidCode is returned when a code references an entry the decoder
	// does not know.
	ErrInvalidCode = errors.New("lzw: invalid code")

	// ErrIO wraps file open/read/write failures of the file helpers. It is the
	// store's ErrIO, so source rules and errors are the same on both paths.
	ErrIO = domain.ErrIO
)
