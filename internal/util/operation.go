package util

import (
	"fmt"

	"github.com/go-sif/parsum"
)

// SafeChunkOperation wraps a ChunkOperation such that panics are recovered and nice error messages are constructed
func SafeChunkOperation(chunkOp parsum.ChunkOperation) (safeChunkOp parsum.ChunkOperation) {
	return func(buf *parsum.Buffer, part parsum.Partition) (sum int64, err error) {
		defer func() {
			if r := recover(); r != nil {
				sum = 0
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Chunk Panic: %w\nPartition: %s\n%s", anErr, part, GetTrace())
				} else {
					err = fmt.Errorf("Chunk Panic: %v\nPartition: %s\n%s", r, part, GetTrace())
				}
			} else if err != nil {
				sum = 0
				err = fmt.Errorf("Chunk Error: %w\nPartition: %s", err, part)
			}
		}()
		sum, err = chunkOp(buf, part)
		return
	}
}
