package accumulators

import (
	"fmt"

	"github.com/go-sif/parsum"
)

var _ parsum.Accumulator = (*Sum)(nil)

// Sum sums values. A Sum is owned by a single goroutine.
type Sum struct {
	sum int64
}

// Value returns the total from this Accumulator
func (a *Sum) Value() int64 {
	return a.sum
}

// Accumulate adds a value to this Accumulator
func (a *Sum) Accumulate(v int64) {
	a.sum += v
}

// AccumulateSlice adds every value in vs to this Accumulator, in index order
func (a *Sum) AccumulateSlice(vs []int64) {
	sum := a.sum
	for _, v := range vs {
		sum += v
	}
	a.sum = sum
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o parsum.Accumulator) error {
	switch ca := o.(type) {
	case *Sum:
		a.sum += ca.sum
	default:
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	return nil
}
