package parsum

import (
	"encoding/binary"
	"math"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/parsum/errors"
)

// fingerprintBlock is the number of values hashed per write
const fingerprintBlock = 512

// A Buffer is an immutable, fixed-length sequence of int64 values. It is
// populated once and shared read-only by every worker of every reduction.
//
// NewBuffer guarantees that the sum of the absolute values fits in an
// int64, so no reduction over a Buffer can overflow regardless of the order
// in which partial sums are combined.
type Buffer struct {
	values      []int64
	fingerprint uint64
}

// NewBuffer creates a Buffer from a copy of values
func NewBuffer(values []int64) (*Buffer, error) {
	var magnitude uint64
	for _, v := range values {
		m := absUint64(v)
		if m > math.MaxInt64 || magnitude > math.MaxInt64-m {
			return nil, errors.OverflowError{Length: len(values)}
		}
		magnitude += m
	}
	data := make([]int64, len(values))
	copy(data, values)
	return &Buffer{values: data, fingerprint: fingerprint(data)}, nil
}

// Len returns the number of values in this Buffer
func (b *Buffer) Len() int {
	return len(b.values)
}

// At returns the value at index i
func (b *Buffer) At(i int) int64 {
	return b.values[i]
}

// Chunk returns the values covered by a Partition. The returned slice
// aliases the Buffer and must not be modified.
func (b *Buffer) Chunk(part Partition) []int64 {
	return b.values[part.Start:part.End:part.End]
}

// Fingerprint returns the xxhash of this Buffer's contents, computed when it was created
func (b *Buffer) Fingerprint() uint64 {
	return b.fingerprint
}

// Intact returns true iff this Buffer's contents still match its Fingerprint
func (b *Buffer) Intact() bool {
	return fingerprint(b.values) == b.fingerprint
}

// Fingerprint computes the xxhash of a sequence of values, encoded as little-endian int64s
func Fingerprint(values []int64) uint64 {
	return fingerprint(values)
}

func fingerprint(values []int64) uint64 {
	hasher := xxhash.New()
	block := make([]byte, 8*fingerprintBlock)
	for len(values) > 0 {
		n := len(values)
		if n > fingerprintBlock {
			n = fingerprintBlock
		}
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint64(block[i*8:], uint64(values[i]))
		}
		hasher.Write(block[:n*8])
		values = values[n:]
	}
	return hasher.Sum64()
}

func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
