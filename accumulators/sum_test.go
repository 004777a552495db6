package accumulators

import (
	"sync"
	"testing"

	"github.com/go-sif/parsum"
	"github.com/stretchr/testify/require"
)

type foreignAccumulator struct{}

func (f *foreignAccumulator) Accumulate(v int64)            {}
func (f *foreignAccumulator) Merge(parsum.Accumulator) error { return nil }
func (f *foreignAccumulator) Value() int64                  { return 7 }

func TestSum(t *testing.T) {
	acc := &Sum{}
	acc.Accumulate(5)
	acc.AccumulateSlice([]int64{3, 8, 1})
	require.EqualValues(t, 17, acc.Value())

	other := &Sum{}
	other.AccumulateSlice([]int64{-2, 10})
	require.Nil(t, acc.Merge(other))
	require.EqualValues(t, 25, acc.Value())

	require.NotNil(t, acc.Merge(&foreignAccumulator{}))
	require.EqualValues(t, 25, acc.Value())
}

func TestAtomicSumConcurrentAdds(t *testing.T) {
	acc := &AtomicSum{}
	numGoroutines := 64
	addsPerGoroutine := 1000
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < addsPerGoroutine; j++ {
				acc.AddAndGet(1)
			}
		}()
	}
	wg.Wait()
	require.EqualValues(t, numGoroutines*addsPerGoroutine, acc.Value())
}

func TestAtomicSumAddAndGet(t *testing.T) {
	acc := &AtomicSum{}
	require.EqualValues(t, 4, acc.AddAndGet(4))
	require.EqualValues(t, -2, acc.AddAndGet(-6))
	require.EqualValues(t, -2, acc.Value())
}
