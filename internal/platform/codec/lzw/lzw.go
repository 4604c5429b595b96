// Package lzw implements the adaptive dictionary codec used by the store.
//
// A byte stream is turned into a stream of fixed-width 16-bit codes in the
// range [0, 4096), written in native byte order with no header. The byte
// length of the stream is its only self description.
package lzw

import (
	"fmt"
)

// Compress encodes input with a dictionary built from scratch for this call.
func Compress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	dict := newEncoderDict()
	codes := make([]uint16, 0, len(input)/2+1)
	current := uint16(input[0])

	for _, c := range input[1:] {
		if next, ok := dict.lookup(current, c); ok {
			current = next
			continue
		}
		codes = append(codes, current)
		dict.add(current, c)
		current = uint16(c)
	}
	codes = append(codes, current)

	return packCodes(codes), nil
}

// Decompress decodes a stream produced by Compress. The decoder learns the
// same entries the encoder learned, one per code after the first.
func Decompress(input []byte) ([]byte, error) {
	codes, err := unpackCodes(input)
	if err != nil {
		return nil, err
	}

	dict := newDecoderDict()
	output := make([]byte, 0, len(codes)*2)
	prev := -1

	for i, code := range codes {
		size := dict.size()
		start := len(output)
		switch {
		case int(code) < size:
			output = dict.appendSequence(output, code)
		case int(code) == size && prev >= 0 && size < DictSize:
			// code todavia no aprendido: prev + primer byte de prev
			output = dict.appendSequence(output, uint16(prev))
			output = append(output, output[start])
		default:
			return nil, fmt.Errorf("%w: code %d at position %d (dictionary size %d)", ErrInvalidCode, code, i, size)
		}
		if prev >= 0 {
			dict.add(uint16(prev), output[start])
		}
		prev = int(code)
	}

	return output, nil
}

// DecompressLiteral decodes using only the 256 base entries, one output byte
// per code. Any code >= 256 is rejected. Streams with repeated runs cannot be
// decoded this way; it exists to read streams the old decoder accepted with
// the exact same results.
func DecompressLiteral(input []byte) ([]byte, error) {
	codes, err := unpackCodes(input)
	if err != nil {
		return nil, err
	}

	output := make([]byte, 0, len(codes))
	for i, code := range codes {
		if code >= baseSize {
			return nil, fmt.Errorf("%w: code %d at position %d (dictionary size %d)", ErrInvalidCode, code, i, baseSize)
		}
		output = append(output, byte(code))
	}
	return output, nil
}
