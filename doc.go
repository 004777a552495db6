// Package parsum contains the core components of parsum, a set of parallel sum reductions over an
// immutable integer Buffer. This root package defines the types shared by the reducers, the
// partitioner and the data sources, and is the best overview of how a reduction is put together.
package parsum
