package errors

import (
	"fmt"
)

// InvalidWorkerCountError occurs when a reduction is requested with fewer than one worker
type InvalidWorkerCountError struct{ Workers int }

// Error returns a textual representation of this InvalidWorkerCountError
func (e InvalidWorkerCountError) Error() string {
	return fmt.Sprintf("Worker count must be at least 1, got %d", e.Workers)
}

// InvalidBufferLengthError occurs when a negative length is supplied to the Partitioner
type InvalidBufferLengthError struct{ Length int }

// Error returns a textual representation of this InvalidBufferLengthError
func (e InvalidBufferLengthError) Error() string {
	return fmt.Sprintf("Buffer length must not be negative, got %d", e.Length)
}

// WorkerFailureError occurs when a worker fails while summing its Partition
type WorkerFailureError struct {
	Worker int
	Start  int
	End    int
	Err    error
}

// Error returns a textual representation of this WorkerFailureError
func (e WorkerFailureError) Error() string {
	return fmt.Sprintf("Worker %d failed on range [%d, %d): %v", e.Worker, e.Start, e.End, e.Err)
}

// Unwrap returns the underlying cause of this WorkerFailureError
func (e WorkerFailureError) Unwrap() error {
	return e.Err
}

// OverflowError occurs when the values of a Buffer could produce a sum outside the range of an int64
type OverflowError struct {
	Length   int
	MaxValue uint64
}

// Error returns a textual representation of this OverflowError
func (e OverflowError) Error() string {
	if e.MaxValue == 0 {
		return fmt.Sprintf("Sum of %d values may overflow int64", e.Length)
	}
	return fmt.Sprintf("Sum of %d values with magnitude up to %d may overflow int64", e.Length, e.MaxValue)
}

// CorruptSnapshotError occurs when a Buffer snapshot does not match its recorded fingerprint
type CorruptSnapshotError struct {
	Expected uint64
	Actual   uint64
}

// Error returns a textual representation of this CorruptSnapshotError
func (e CorruptSnapshotError) Error() string {
	return fmt.Sprintf("Snapshot fingerprint mismatch: expected %x, got %x", e.Expected, e.Actual)
}

// BufferMutatedError occurs when a Buffer's contents change while reductions are running against it
type BufferMutatedError struct{}

// Error returns a textual representation of this BufferMutatedError
func (e BufferMutatedError) Error() string {
	return "Buffer was modified during reduction"
}
