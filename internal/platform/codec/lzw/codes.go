package lzw

import (
	"encoding/binary"
	"fmt"
	"io"
)

// CodeWidth is the size in bytes of one code in the stream.
const CodeWidth = 2

func packCodes(codes []uint16) []byte {
	out := make([]byte, len(codes)*CodeWidth)
	for i, code := range codes {
		binary.NativeEndian.PutUint16(out[i*CodeWidth:], code)
	}
	return out
}

func unpackCodes(input []byte) ([]uint16, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("%w: empty stream", ErrMalformedInput)
	}
	if len(input)%CodeWidth != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrMalformedInput, len(input), CodeWidth)
	}
	codes := make([]uint16, len(input)/CodeWidth)
	for i := range codes {
		codes[i] = binary.NativeEndian.Uint16(input[i*CodeWidth:])
	}
	return codes, nil
}

// Codes devuelve los codigos de un stream comprimido.
func Codes(stream []byte) ([]uint16, error) {
	return unpackCodes(stream)
}

// WriteCodes escribe los codigos en w con el orden de bytes nativo
func WriteCodes(w io.Writer, codes []uint16) error {
	for _, code := range codes {
		if code > MaxCode {
			return fmt.Errorf("%w: code %d out of range", ErrInvalidCode, code)
		}
	}
	return binary.Write(w, binary.NativeEndian, codes)
}

// ReadCodes lee todo r como un stream de codigos.
func ReadCodes(r io.Reader) ([]uint16, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return unpackCodes(data)
}
