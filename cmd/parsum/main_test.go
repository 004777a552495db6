package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/bench"
	"github.com/go-sif/parsum/logging"
	"github.com/go-sif/parsum/reduce"
	partest "github.com/go-sif/parsum/testing"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	root := newRootCommand(&out)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "0", formatNumber(0))
	require.Equal(t, "999", formatNumber(999))
	require.Equal(t, "1,000", formatNumber(1000))
	require.Equal(t, "10,000,000", formatNumber(10_000_000))
	require.Equal(t, "-1,234,567", formatNumber(-1234567))
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--size", "10000", "--workers", "2,4")
	require.Nil(t, err)
	require.Contains(t, out, "Buffer size: 10,000 values")
	require.Contains(t, out, "--- Workers: 2 ---")
	require.Contains(t, out, "--- Workers: 4 ---")
	require.Equal(t, 2, strings.Count(out, "Results equal: true"))
	// 10,000 values, three reductions, two worker counts
	require.Contains(t, out, "Reductions: 6 (0 failed), values summed: 60,000")
	require.Regexp(t, `Fastest local-merge: [24] workers`, out)
	require.Regexp(t, `Fastest shared-atomic: [24] workers`, out)
}

func TestRunCommandZeroRange(t *testing.T) {
	out, err := execute(t, "run", "--size", "10", "--min", "0", "--max", "0", "--workers", "2")
	require.Nil(t, err)
	require.Equal(t, 3, strings.Count(out, "Sum: 0\n"))
	require.Contains(t, out, "Results equal: true")
}

func TestPrintReportFailure(t *testing.T) {
	buf, err := parsum.NewBuffer([]int64{5, 3, 8, 1, 9, 2, 7, 4, 6, 10})
	require.Nil(t, err)
	report, err := bench.Run(buf, &bench.RunOptions{
		WorkerCounts:   []int{2},
		ChunkOperation: partest.PanicOnWorker(reduce.SumChunk, 1, "worker exploded"),
		Logger:         logging.Discard(),
	})
	require.Nil(t, err)

	var out bytes.Buffer
	printReport(&out, report)
	require.Equal(t, 2, strings.Count(out.String(), "failed (worker 1)"))
	require.Contains(t, out.String(), "Sum: 55")
	require.Contains(t, out.String(), "Results equal: false")
	require.Contains(t, out.String(), "Reductions: 3 (2 failed)")
	require.Contains(t, out.String(), "Fastest local-merge: none succeeded")
	require.NotContains(t, out.String(), "worker exploded")
	require.NotContains(t, out.String(), "Chunk Panic")
	require.NotContains(t, out.String(), "goroutine")
}

func TestRunCommandInvalidWorkers(t *testing.T) {
	_, err := execute(t, "run", "--size", "10", "--workers", "0")
	require.NotNil(t, err)
}

func TestRunCommandJSONLInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.jsonl")
	lines := []string{}
	for _, v := range []string{"5", "3", "8", "1", "9", "2", "7", "4", "6", "10"} {
		lines = append(lines, "{\"v\": "+v+"}")
	}
	require.Nil(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644))

	out, err := execute(t, "run", "--input", path, "--value-path", "v", "--workers", "2")
	require.Nil(t, err)
	require.Contains(t, out, "Sum: 55")
	require.Contains(t, out, "Results equal: true")
}

func TestSnapshotCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buffer.lz4")

	out, err := execute(t, "snapshot", "--size", "5000", "--seed", "7", "--out", path)
	require.Nil(t, err)
	require.Contains(t, out, "Wrote 5,000 values")

	out, err = execute(t, "run", "--snapshot", path, "--workers", "3")
	require.Nil(t, err)
	require.Contains(t, out, "Buffer size: 5,000 values")
	require.Contains(t, out, "Results equal: true")

	_, err = execute(t, "run", "--snapshot", path, "--input", path)
	require.NotNil(t, err)
}

func TestRunCommandInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "run", "--size", "10", "--log-level", "loud")
	require.NotNil(t, err)
}
