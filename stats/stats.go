package stats

import (
	"time"
)

// Strategy names a reduction technique
type Strategy = string

const (
	// LocalMerge sums Partitions into private accumulators which are merged after the join
	LocalMerge Strategy = "local-merge"
	// SharedAtomic sums Partitions locally and commits each partial sum to one atomic accumulator
	SharedAtomic Strategy = "shared-atomic"
	// Sequential sums the whole Buffer on a single goroutine
	Sequential Strategy = "sequential"
)

// Timing is the runtime of a single reduction
type Timing struct {
	Strategy Strategy
	Workers  int
	Values   int
	Runtime  time.Duration
	Failed   bool
}

// RunStatistics contains statistics about a benchmark run. It is not safe
// for concurrent use; reductions are timed one at a time.
type RunStatistics struct {
	started         bool
	finished        bool
	startTime       time.Time
	totalRuntime    int64
	valuesProcessed int64
	timings         []Timing

	// temp vars
	currentReductionStartTime time.Time
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start() {
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.totalRuntime = time.Since(rs.startTime).Nanoseconds()
	rs.finished = true
}

// StartReduction tracks the beginning of a reduction
func (rs *RunStatistics) StartReduction() {
	rs.currentReductionStartTime = time.Now()
}

// EndReduction tracks the end of a reduction, returning its runtime
func (rs *RunStatistics) EndReduction(strategy Strategy, numWorkers int, numValues int, failed bool) time.Duration {
	runtime := time.Since(rs.currentReductionStartTime)
	rs.timings = append(rs.timings, Timing{
		Strategy: strategy,
		Workers:  numWorkers,
		Values:   numValues,
		Runtime:  runtime,
		Failed:   failed,
	})
	if !failed {
		rs.valuesProcessed += int64(numValues)
	}
	return runtime
}

// GetStartTime returns the start time of the benchmark run
func (rs *RunStatistics) GetStartTime() time.Time {
	return rs.startTime
}

// GetRuntime returns the running time of the benchmark run
func (rs *RunStatistics) GetRuntime() time.Duration {
	if rs.finished {
		return time.Duration(rs.totalRuntime)
	}
	return time.Since(rs.startTime)
}

// GetNumValuesProcessed returns the number of values summed by successful reductions so far
func (rs *RunStatistics) GetNumValuesProcessed() int64 {
	return rs.valuesProcessed
}

// GetTimings returns every recorded reduction, in the order they ran
func (rs *RunStatistics) GetTimings() []Timing {
	return rs.timings
}

// GetFastest returns the fastest successful reduction using strategy, and false if there is none
func (rs *RunStatistics) GetFastest(strategy Strategy) (Timing, bool) {
	var fastest Timing
	found := false
	for _, t := range rs.timings {
		if t.Strategy != strategy || t.Failed {
			continue
		}
		if !found || t.Runtime < fastest.Runtime {
			fastest = t
			found = true
		}
	}
	return fastest, found
}
