package parsum

import "fmt"

// A Partition is a half-open range [Start, End) of a Buffer assigned to
// exactly one worker. Index identifies the worker.
type Partition struct {
	Index int
	Start int
	End   int
}

// Len returns the number of values covered by this Partition
func (p Partition) Len() int {
	return p.End - p.Start
}

// IsEmpty returns true iff this Partition covers no values
func (p Partition) IsEmpty() bool {
	return p.End <= p.Start
}

// String returns a textual representation of this Partition
func (p Partition) String() string {
	return fmt.Sprintf("%d:[%d, %d)", p.Index, p.Start, p.End)
}
