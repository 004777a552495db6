package reduce

import (
	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/logging"
)

// Options configure a parallel reduction
type Options struct {
	MaxConcurrency int                   // the maximum number of workers summing at once (0 runs every worker at once)
	ChunkOperation parsum.ChunkOperation // sums a single Partition (defaults to SumChunk)
	Logger         *logging.Logger       // destination for log messages (defaults to logging.Default())
}

// CloneOptions makes a copy of Options
func CloneOptions(opts *Options) *Options {
	if opts == nil {
		return &Options{}
	}
	return &Options{
		MaxConcurrency: opts.MaxConcurrency,
		ChunkOperation: opts.ChunkOperation,
		Logger:         opts.Logger,
	}
}

func ensureDefaultOptionsValues(opts *Options) *Options {
	res := CloneOptions(opts)
	if res.MaxConcurrency < 0 {
		res.MaxConcurrency = 0
	}
	if res.ChunkOperation == nil {
		res.ChunkOperation = SumChunk
	}
	if res.Logger == nil {
		res.Logger = logging.Default()
	}
	return res
}
