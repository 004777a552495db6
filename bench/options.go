package bench

import (
	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/errors"
	"github.com/go-sif/parsum/logging"
)

// DefaultWorkerCounts are the worker counts benchmarked when none are configured
var DefaultWorkerCounts = []int{2, 4, 8, 16}

// RunOptions configure a benchmark run
type RunOptions struct {
	WorkerCounts   []int                 // the worker counts to benchmark, in order (defaults to DefaultWorkerCounts)
	MaxConcurrency int                   // the maximum number of workers summing at once (0 runs every worker at once)
	ChunkOperation parsum.ChunkOperation // sums a single Partition (defaults to reduce.SumChunk)
	Logger         *logging.Logger       // destination for log messages (defaults to logging.Default())
}

// CloneRunOptions makes a copy of RunOptions
func CloneRunOptions(opts *RunOptions) *RunOptions {
	if opts == nil {
		return &RunOptions{}
	}
	res := &RunOptions{
		MaxConcurrency: opts.MaxConcurrency,
		ChunkOperation: opts.ChunkOperation,
		Logger:         opts.Logger,
	}
	if opts.WorkerCounts != nil {
		res.WorkerCounts = append([]int{}, opts.WorkerCounts...)
	}
	return res
}

func ensureDefaultRunOptionsValues(opts *RunOptions) (*RunOptions, error) {
	res := CloneRunOptions(opts)
	if len(res.WorkerCounts) == 0 {
		res.WorkerCounts = append([]int{}, DefaultWorkerCounts...)
	}
	for _, w := range res.WorkerCounts {
		if w < 1 {
			return nil, errors.InvalidWorkerCountError{Workers: w}
		}
	}
	if res.Logger == nil {
		res.Logger = logging.Default()
	}
	return res, nil
}
