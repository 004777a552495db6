package file

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/errors"
	"github.com/pierrec/lz4"
)

// snapshotMagic identifies a Buffer snapshot
const snapshotMagic uint64 = 0x7073756d736e6170

// initialCapacity caps the allocation made from an untrusted length header
const initialCapacity = 1 << 20

// WriteSnapshot serializes and compresses buf to w. The snapshot records the
// length and fingerprint of buf so that ReadSnapshot can verify it.
func WriteSnapshot(w io.Writer, buf *parsum.Buffer) error {
	compressor := lz4.NewWriter(w)
	bw := bufio.NewWriter(compressor)
	header := make([]byte, 24)
	binary.LittleEndian.PutUint64(header[0:], snapshotMagic)
	binary.LittleEndian.PutUint64(header[8:], uint64(buf.Len()))
	binary.LittleEndian.PutUint64(header[16:], buf.Fingerprint())
	if _, err := bw.Write(header); err != nil {
		return err
	}
	word := make([]byte, 8)
	for i := 0; i < buf.Len(); i++ {
		binary.LittleEndian.PutUint64(word, uint64(buf.At(i)))
		if _, err := bw.Write(word); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return compressor.Close()
}

// ReadSnapshot decompresses and deserializes a Buffer written by WriteSnapshot
func ReadSnapshot(r io.Reader) (*parsum.Buffer, error) {
	br := bufio.NewReader(lz4.NewReader(r))
	header := make([]byte, 24)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("Unable to read snapshot header: %w", err)
	}
	if magic := binary.LittleEndian.Uint64(header[0:]); magic != snapshotMagic {
		return nil, fmt.Errorf("Not a Buffer snapshot")
	}
	length := binary.LittleEndian.Uint64(header[8:])
	expected := binary.LittleEndian.Uint64(header[16:])
	capacity := length
	if capacity > initialCapacity {
		capacity = initialCapacity
	}
	values := make([]int64, 0, capacity)
	word := make([]byte, 8)
	for i := uint64(0); i < length; i++ {
		if _, err := io.ReadFull(br, word); err != nil {
			return nil, fmt.Errorf("Snapshot truncated after %d of %d values: %w", i, length, err)
		}
		values = append(values, int64(binary.LittleEndian.Uint64(word)))
	}
	if actual := parsum.Fingerprint(values); actual != expected {
		return nil, errors.CorruptSnapshotError{Expected: expected, Actual: actual}
	}
	return parsum.NewBuffer(values)
}

// SaveSnapshot writes a snapshot of buf to the file at path, replacing it if it exists
func SaveSnapshot(path string, buf *parsum.Buffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteSnapshot(f, buf)
}

// LoadSnapshot reads a snapshot from the file at path
func LoadSnapshot(path string) (*parsum.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSnapshot(f)
}
