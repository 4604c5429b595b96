package lzw

import (
	"fmt"
	"strings"
)

// Mode selects the decoder used by Codec.
type Mode int

const (
	// ModeSymmetric rebuilds the encoder dictionary while decoding.
	ModeSymmetric Mode = iota
	// ModeLiteral only knows the 256 single byte entries.
	ModeLiteral
)

func (m Mode) String() string {
	switch m {
	case ModeSymmetric:
		return "symmetric"
	case ModeLiteral:
		return "literal"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "symmetric":
		return ModeSymmetric, nil
	case "literal":
		return ModeLiteral, nil
	default:
		return 0, fmt.Errorf("unknown codec mode: %q", name)
	}
}

type Codec struct {
	mode Mode
}

func NewCodec(mode Mode) *Codec {
	return &Codec{mode: mode}
}

func (c *Codec) Mode() Mode {
	return c.mode
}

func (c *Codec) Compress(data []byte) ([]byte, error) {
	return Compress(data)
}

func (c *Codec) Decompress(stream []byte) ([]byte, error) {
	if c.mode == ModeLiteral {
		return DecompressLiteral(stream)
	}
	return Decompress(stream)
}
