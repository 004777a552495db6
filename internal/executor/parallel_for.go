package executor

import (
	"context"
	"sync"

	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/errors"
	iutil "github.com/go-sif/parsum/internal/util"
	"github.com/go-sif/parsum/logging"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"
)

// Task is the work performed by a single worker against its Partition.
// Tasks must not panic; wrap user code with util.SafeChunkOperation.
type Task func(part parsum.Partition) error

// ParallelFor runs task once per Partition, each on its own goroutine, and
// returns only after every goroutine has finished. If maxConcurrency is
// positive, at most that many tasks run at once. Failures are collected after
// the join and returned as a *multierror.Error of errors.WorkerFailureError,
// ordered by worker index.
func ParallelFor(parts []parsum.Partition, maxConcurrency int, logger *logging.Logger, task Task) error {
	var wg sync.WaitGroup
	var sem *semaphore.Weighted
	if maxConcurrency > 0 && maxConcurrency < len(parts) {
		sem = semaphore.NewWeighted(int64(maxConcurrency))
	}
	errs := make([]error, len(parts))
	wg.Add(len(parts))
	for i := range parts {
		go asyncRunTask(parts[i], task, sem, logger, &wg, &errs[i])
	}
	wg.Wait()

	var multierr *multierror.Error
	for i, err := range errs {
		if err == nil {
			continue
		}
		logger.Warnf("Worker %d failed: %v", parts[i].Index, err)
		multierr = multierror.Append(multierr, errors.WorkerFailureError{
			Worker: parts[i].Index,
			Start:  parts[i].Start,
			End:    parts[i].End,
			Err:    err,
		})
	}
	if multierr != nil {
		multierr.ErrorFormat = iutil.FormatMultiError
	}
	return multierr.ErrorOrNil()
}

func asyncRunTask(part parsum.Partition, task Task, sem *semaphore.Weighted, logger *logging.Logger, wg *sync.WaitGroup, result *error) {
	defer wg.Done()
	if sem != nil {
		// cannot fail, since the context is never cancelled
		if err := sem.Acquire(context.Background(), 1); err != nil {
			*result = err
			return
		}
		defer sem.Release(1)
	}
	logger.Debugf("Worker %d summing %s", part.Index, part)
	*result = task(part)
}
