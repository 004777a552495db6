package accumulators

import (
	"sync/atomic"
)

// AtomicSum sums values and may be shared between goroutines. Every update is
// a single atomic add, so concurrent contributions are never lost.
type AtomicSum struct {
	sum atomic.Int64
}

// Value returns the total from this AtomicSum
func (a *AtomicSum) Value() int64 {
	return a.sum.Load()
}

// AddAndGet atomically adds delta to this AtomicSum and returns the new total
func (a *AtomicSum) AddAndGet(delta int64) int64 {
	return a.sum.Add(delta)
}
