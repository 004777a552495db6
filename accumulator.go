package parsum

// An Accumulator collects int64 values into a running total. Each worker
// owns one while it sums its Partition, and per-worker Accumulators are
// merged once every worker has finished.
type Accumulator interface {
	Accumulate(v int64)        // Accumulate adds a value to this Accumulator
	Merge(o Accumulator) error // Merge merges another Accumulator into this one
	Value() int64              // Value returns the current total
}
