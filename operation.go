package parsum

// ChunkOperation - A function which sums the values of a single Partition of a Buffer.
// Implementations must not modify the Buffer.
type ChunkOperation func(buf *Buffer, part Partition) (int64, error)
