package domain

import (
	"github.com/zeebo/blake3"
)

type CompressedObject struct {
	data         []byte
	originalSize int64
	digest       [32]byte
}

func NewCompressedObject(compressed, original []byte) *CompressedObject {
	return &CompressedObject{
		data:         compressed,
		originalSize: int64(len(original)),
		digest:       blake3.Sum256(original),
	}
}

func (o *CompressedObject) Data() []byte {
	return o.data
}

func (o *CompressedObject) CompressedSize() int64 {
	return int64(len(o.data))
}

func (o *CompressedObject) OriginalSize() int64 {
	return o.originalSize
}

// Matches reports whether decoded are the bytes this object was built from.
func (o *CompressedObject) Matches(decoded []byte) bool {
	return int64(len(decoded)) == o.originalSize && blake3.Sum256(decoded) == o.digest
}

// release suelta el buffer comprimido
func (o *CompressedObject) release() {
	o.data = nil
}

type ObjectRepository interface {
	Save(name string, object *CompressedObject)
	Get(name string) (*CompressedObject, bool)
	Delete(name string) bool
	// Each visits every object in ascending name order until visit returns false.
	Each(visit func(name string, object *CompressedObject) bool)
	Len() int
	Close()
}

// ObjectRepositoryFactory builds the empty index of a new store.
type ObjectRepositoryFactory func() ObjectRepository

type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(stream []byte) ([]byte, error)
}
