// Package testing provides ChunkOperations which inject failures into a
// reduction, so that failure handling and worker joining can be exercised.
package testing

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-sif/parsum"
)

// ForcedFailureError is returned by FailOnWorker
type ForcedFailureError struct{ Worker int }

// Error returns a textual representation of this ForcedFailureError
func (e ForcedFailureError) Error() string {
	return fmt.Sprintf("Forced failure in worker %d", e.Worker)
}

// FailOnWorker wraps op so that the given worker returns a ForcedFailureError
// instead of summing. Every other worker runs op.
func FailOnWorker(op parsum.ChunkOperation, worker int) parsum.ChunkOperation {
	return func(buf *parsum.Buffer, part parsum.Partition) (int64, error) {
		if part.Index == worker {
			return 0, ForcedFailureError{Worker: worker}
		}
		return op(buf, part)
	}
}

// PanicOnWorker wraps op so that the given worker panics with v
func PanicOnWorker(op parsum.ChunkOperation, worker int, v interface{}) parsum.ChunkOperation {
	return func(buf *parsum.Buffer, part parsum.Partition) (int64, error) {
		if part.Index == worker {
			panic(v)
		}
		return op(buf, part)
	}
}

// Delay wraps op so that every worker sleeps for d before summing
func Delay(op parsum.ChunkOperation, d time.Duration) parsum.ChunkOperation {
	return func(buf *parsum.Buffer, part parsum.Partition) (int64, error) {
		time.Sleep(d)
		return op(buf, part)
	}
}

// Tracker counts the ChunkOperations which have started and finished
type Tracker struct {
	started  int32
	finished int32
}

// Track wraps op so that its invocations are counted by this Tracker. A
// ChunkOperation counts as finished whether it succeeded, failed or panicked.
func (tr *Tracker) Track(op parsum.ChunkOperation) parsum.ChunkOperation {
	return func(buf *parsum.Buffer, part parsum.Partition) (int64, error) {
		atomic.AddInt32(&tr.started, 1)
		defer atomic.AddInt32(&tr.finished, 1)
		return op(buf, part)
	}
}

// Started returns the number of tracked ChunkOperations which have started
func (tr *Tracker) Started() int {
	return int(atomic.LoadInt32(&tr.started))
}

// Finished returns the number of tracked ChunkOperations which have returned
func (tr *Tracker) Finished() int {
	return int(atomic.LoadInt32(&tr.finished))
}
