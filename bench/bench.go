// Package bench times every reduction strategy over a Buffer for a series of
// worker counts, and checks that they agree.
package bench

import (
	"time"

	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/errors"
	"github.com/go-sif/parsum/reduce"
	"github.com/go-sif/parsum/stats"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
)

// Measurement is the outcome of a single timed reduction. Total is only
// meaningful when Err is nil.
type Measurement struct {
	Total   int64
	Runtime time.Duration
	Err     error
}

// Result holds the three reductions performed for one worker count
type Result struct {
	Workers      int
	LocalMerge   Measurement
	SharedAtomic Measurement
	Sequential   Measurement
	Verified     bool  // true iff every reduction succeeded and all three totals are equal
	Err          error // every reduction failure for this worker count
}

// Report is the outcome of a benchmark run
type Report struct {
	RunID     string
	BufferLen int
	Results   []Result
	Stats     *stats.RunStatistics
}

// AllVerified returns true iff every Result in this Report was verified
func (r *Report) AllVerified() bool {
	if len(r.Results) == 0 {
		return false
	}
	for _, res := range r.Results {
		if !res.Verified {
			return false
		}
	}
	return true
}

// Run benchmarks buf with each configured worker count in turn. A failing
// reduction is recorded in its Result, and the remaining worker counts still
// run. Run itself fails if the options are invalid or buf was modified.
func Run(buf *parsum.Buffer, opts *RunOptions) (*Report, error) {
	opts, err := ensureDefaultRunOptionsValues(opts)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	report := &Report{
		RunID:     id.String(),
		BufferLen: buf.Len(),
		Results:   make([]Result, 0, len(opts.WorkerCounts)),
		Stats:     &stats.RunStatistics{},
	}
	reduceOpts := &reduce.Options{
		MaxConcurrency: opts.MaxConcurrency,
		ChunkOperation: opts.ChunkOperation,
		Logger:         opts.Logger,
	}

	opts.Logger.Infof("Starting run %s over %d values", report.RunID, buf.Len())
	report.Stats.Start()
	for _, numWorkers := range opts.WorkerCounts {
		res := runWorkerCount(buf, numWorkers, reduceOpts, report.Stats)
		if res.Err != nil {
			opts.Logger.Errorf("Run %s with %d workers failed: %v", report.RunID, numWorkers, res.Err)
		} else {
			opts.Logger.Infof("Run %s with %d workers verified: %t", report.RunID, numWorkers, res.Verified)
		}
		report.Results = append(report.Results, res)
	}
	report.Stats.Finish()

	if !buf.Intact() {
		return report, errors.BufferMutatedError{}
	}
	return report, nil
}

func runWorkerCount(buf *parsum.Buffer, numWorkers int, opts *reduce.Options, rs *stats.RunStatistics) Result {
	res := Result{Workers: numWorkers}

	res.LocalMerge = measure(rs, stats.LocalMerge, numWorkers, buf.Len(), func() (int64, error) {
		return reduce.LocalMerge(buf, numWorkers, opts)
	})
	res.SharedAtomic = measure(rs, stats.SharedAtomic, numWorkers, buf.Len(), func() (int64, error) {
		return reduce.SharedAtomic(buf, numWorkers, opts)
	})
	res.Sequential = measure(rs, stats.Sequential, 1, buf.Len(), func() (int64, error) {
		return reduce.Sequential(buf), nil
	})

	var multierr *multierror.Error
	for _, m := range []Measurement{res.LocalMerge, res.SharedAtomic, res.Sequential} {
		if m.Err != nil {
			multierr = multierror.Append(multierr, m.Err)
		}
	}
	res.Err = multierr.ErrorOrNil()
	res.Verified = res.Err == nil && reduce.Verify(res.LocalMerge.Total, res.SharedAtomic.Total, res.Sequential.Total)
	return res
}

func measure(rs *stats.RunStatistics, strategy stats.Strategy, numWorkers int, numValues int, fn func() (int64, error)) Measurement {
	rs.StartReduction()
	total, err := fn()
	runtime := rs.EndReduction(strategy, numWorkers, numValues, err != nil)
	if err != nil {
		return Measurement{Runtime: runtime, Err: err}
	}
	return Measurement{Total: total, Runtime: runtime}
}
