package diskavl

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"strings"
)

// Codec converts elements to and from the self-describing payload blob
// stored in each node, and defines the total order the tree is kept in.
//
// Encode must be deterministic, and Decode(Encode(v)) must compare equal
// to v under Compare. Decode must return a value independent of the input
// slice; yielded values can then be mutated freely without touching stored
// state.
type Codec[E any] interface {
	Encode(v E) ([]byte, error)
	Decode(b []byte) (E, error)
	Compare(a, b E) int
}

// Int64Codec stores an int64 as 8 big-endian bytes.
type Int64Codec struct{}

func (Int64Codec) Encode(v int64) ([]byte, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b, nil
}

func (Int64Codec) Decode(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: int64 payload must be 8 bytes, got %d", ErrBadPayloadLen, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (Int64Codec) Compare(a, b int64) int { return cmp.Compare(a, b) }

// Uint64Codec stores a uint64 as 8 big-endian bytes.
type Uint64Codec struct{}

func (Uint64Codec) Encode(v uint64) ([]byte, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b, nil
}

func (Uint64Codec) Decode(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: uint64 payload must be 8 bytes, got %d", ErrBadPayloadLen, len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

func (Uint64Codec) Compare(a, b uint64) int { return cmp.Compare(a, b) }

// StringCodec stores a string as its raw bytes, ordered lexicographically.
type StringCodec struct{}

func (StringCodec) Encode(v string) ([]byte, error) { return []byte(v), nil }

func (StringCodec) Decode(b []byte) (string, error) { return string(b), nil }

func (StringCodec) Compare(a, b string) int { return strings.Compare(a, b) }

// BinaryCodec stores a byte slice verbatim, ordered lexicographically.
// Both directions copy, so stored payloads never alias caller memory.
type BinaryCodec struct{}

func (BinaryCodec) Encode(v []byte) ([]byte, error) {
	return bytes.Clone(v), nil
}

func (BinaryCodec) Decode(b []byte) ([]byte, error) {
	return bytes.Clone(b), nil
}

func (BinaryCodec) Compare(a, b []byte) int { return bytes.Compare(a, b) }
