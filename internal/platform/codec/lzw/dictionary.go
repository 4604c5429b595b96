package lzw

const (
	// DictSize es el numero maximo de entradas (espacio de 12 bits).
	DictSize = 4096
	MaxCode  = DictSize - 1

	baseSize = 256
)

type transition struct {
	code uint16
	next byte
}

// encoderDict learns (code, byte) -> code transitions. Only learned entries
// are stored, so small inputs don't pay for a 4096x256 table.
type encoderDict struct {
	next map[transition]uint16
	size int
}

func newEncoderDict() *encoderDict {
	return &encoderDict{
		next: make(map[transition]uint16),
		size: baseSize,
	}
}

func (d *encoderDict) lookup(code uint16, c byte) (uint16, bool) {
	child, ok := d.next[transition{code, c}]
	return child, ok
}

// add registers code+c at the next free slot. Once the dictionary is full
// nothing is learned anymore.
func (d *encoderDict) add(code uint16, c byte) bool {
	if d.size >= DictSize {
		return false
	}
	d.next[transition{code, c}] = uint16(d.size)
	d.size++
	return true
}

type decoderEntry struct {
	prefix uint16
	value  byte
	first  byte
	length int
}

// decoderDict rebuilds the encoder's growth: every entry is a known prefix
// plus one byte.
type decoderDict struct {
	entries []decoderEntry
}

func newDecoderDict() *decoderDict {
	entries := make([]decoderEntry, baseSize, DictSize)
	for i := range entries {
		entries[i] = decoderEntry{value: byte(i), first: byte(i), length: 1}
	}
	return &decoderDict{entries: entries}
}

func (d *decoderDict) size() int {
	return len(d.entries)
}

func (d *decoderDict) add(prefix uint16, c byte) {
	if len(d.entries) >= DictSize {
		return
	}
	p := d.entries[prefix]
	d.entries = append(d.entries, decoderEntry{
		prefix: prefix,
		value:  c,
		first:  p.first,
		length: p.length + 1,
	})
}

// appendSequence appends the bytes of code to dst. The chain is walked from
// the last byte back to the first, so the space is reserved up front.
func (d *decoderDict) appendSequence(dst []byte, code uint16) []byte {
	e := d.entries[code]
	start := len(dst)
	dst = append(dst, make([]byte, e.length)...)
	for i := start + e.length - 1; i >= start; i-- {
		dst[i] = e.value
		e = d.entries[e.prefix]
	}
	return dst
}
