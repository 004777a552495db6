// Package stats tracks runtimes of the reductions performed during a benchmark run
package stats
