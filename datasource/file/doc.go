// Package file stores Buffers as lz4-compressed snapshots, so that a large
// generated Buffer can be reused across benchmark runs.
package file
