package partition

import (
	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/errors"
)

// Split divides n values into numWorkers contiguous Partitions. Every
// Partition but the last covers n/numWorkers values; the last one absorbs
// the remainder and always ends at n. When numWorkers exceeds n, leading
// Partitions may be empty.
func Split(n int, numWorkers int) ([]parsum.Partition, error) {
	if numWorkers < 1 {
		return nil, errors.InvalidWorkerCountError{Workers: numWorkers}
	}
	if n < 0 {
		return nil, errors.InvalidBufferLengthError{Length: n}
	}
	chunk := n / numWorkers
	parts := make([]parsum.Partition, numWorkers)
	for i := 0; i < numWorkers; i++ {
		start := i * chunk
		end := start + chunk
		if i == numWorkers-1 {
			end = n
		}
		parts[i] = parsum.Partition{Index: i, Start: start, End: end}
	}
	return parts, nil
}

// SplitBuffer divides a Buffer into numWorkers Partitions, as Split
func SplitBuffer(buf *parsum.Buffer, numWorkers int) ([]parsum.Partition, error) {
	return Split(buf.Len(), numWorkers)
}
