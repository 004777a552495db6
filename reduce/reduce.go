// Package reduce sums a parsum.Buffer, either sequentially or in parallel
// over statically assigned Partitions.
package reduce

import (
	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/accumulators"
	"github.com/go-sif/parsum/internal/executor"
	iutil "github.com/go-sif/parsum/internal/util"
	"github.com/go-sif/parsum/partition"
)

// SumChunk is the default ChunkOperation, summing a Partition in index order
func SumChunk(buf *parsum.Buffer, part parsum.Partition) (int64, error) {
	acc := &accumulators.Sum{}
	acc.AccumulateSlice(buf.Chunk(part))
	return acc.Value(), nil
}

// Sequential sums every value of buf in index order on the calling goroutine
func Sequential(buf *parsum.Buffer) int64 {
	acc := &accumulators.Sum{}
	acc.AccumulateSlice(buf.Chunk(parsum.Partition{Start: 0, End: buf.Len()}))
	return acc.Value()
}

// LocalMerge sums buf with numWorkers workers. Each worker sums its own
// Partition into a private accumulator; once every worker has finished, the
// partial results are merged in worker order. If any worker fails, no total
// is returned and the error aggregates every failure.
func LocalMerge(buf *parsum.Buffer, numWorkers int, opts *Options) (int64, error) {
	opts = ensureDefaultOptionsValues(opts)
	parts, err := partition.SplitBuffer(buf, numWorkers)
	if err != nil {
		return 0, err
	}
	chunkOp := iutil.SafeChunkOperation(opts.ChunkOperation)
	partials := make([]accumulators.Sum, len(parts))
	err = executor.ParallelFor(parts, opts.MaxConcurrency, opts.Logger, func(part parsum.Partition) error {
		sum, err := chunkOp(buf, part)
		if err != nil {
			return err
		}
		partials[part.Index].Accumulate(sum)
		return nil
	})
	if err != nil {
		return 0, err
	}
	total := &accumulators.Sum{}
	for i := range partials {
		if err := total.Merge(&partials[i]); err != nil {
			return 0, err
		}
	}
	opts.Logger.Debugf("Local merge of %d partials: %d", len(partials), total.Value())
	return total.Value(), nil
}

// SharedAtomic sums buf with numWorkers workers. Each worker sums its own
// Partition locally, then commits its partial result to a single shared
// accumulator with one atomic add. If any worker fails, no total is returned
// and the error aggregates every failure.
func SharedAtomic(buf *parsum.Buffer, numWorkers int, opts *Options) (int64, error) {
	opts = ensureDefaultOptionsValues(opts)
	parts, err := partition.SplitBuffer(buf, numWorkers)
	if err != nil {
		return 0, err
	}
	chunkOp := iutil.SafeChunkOperation(opts.ChunkOperation)
	shared := &accumulators.AtomicSum{}
	err = executor.ParallelFor(parts, opts.MaxConcurrency, opts.Logger, func(part parsum.Partition) error {
		sum, err := chunkOp(buf, part)
		if err != nil {
			return err
		}
		running := shared.AddAndGet(sum)
		opts.Logger.Debugf("Worker %d committed %d, running total %d", part.Index, sum, running)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return shared.Value(), nil
}

// Verify returns true iff all three totals are equal
func Verify(a, b, c int64) bool {
	return a == b && b == c
}
