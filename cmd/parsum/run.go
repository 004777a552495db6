package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-sif/parsum/bench"
	perrors "github.com/go-sif/parsum/errors"
	"github.com/go-sif/parsum/stats"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

func newRunCommand(out io.Writer) *cobra.Command {
	sf := &sourceFlags{}
	var workerCounts []int
	var maxConcurrency int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sum a Buffer with every strategy and check that the totals agree",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := sf.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			buf, err := sf.loadBuffer(logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "=== Parallel array sum ===\n\nBuffer size: %s values\n\n", formatNumber(int64(buf.Len())))
			report, err := bench.Run(buf, &bench.RunOptions{
				WorkerCounts:   workerCounts,
				MaxConcurrency: maxConcurrency,
				Logger:         logger,
			})
			if report != nil {
				printReport(out, report)
			}
			if err != nil {
				return err
			}
			if !report.AllVerified() {
				return fmt.Errorf("run %s: not every reduction was verified", report.RunID)
			}
			return nil
		},
	}
	addSourceFlags(cmd, sf)
	cmd.Flags().IntSliceVar(&workerCounts, "workers", bench.DefaultWorkerCounts, "worker counts to benchmark")
	cmd.Flags().IntVar(&maxConcurrency, "max-concurrency", 0, "maximum number of workers summing at once (0 for no limit)")
	cmd.Flags().StringVar(&sf.input, "input", "", "read values from a JSON Lines file instead of generating them")
	cmd.Flags().StringVar(&sf.valuePath, "value-path", "", "gjson path of the value within each --input line")
	cmd.Flags().StringVar(&sf.snapshot, "snapshot", "", "read values from a snapshot written by 'parsum snapshot'")
	return cmd
}

func printReport(out io.Writer, report *bench.Report) {
	for _, res := range report.Results {
		fmt.Fprintf(out, "--- Workers: %d ---\n", res.Workers)
		printMeasurement(out, "Local merge:  ", res.LocalMerge)
		printMeasurement(out, "Shared atomic:", res.SharedAtomic)
		printMeasurement(out, "Sequential:   ", res.Sequential)
		fmt.Fprintf(out, "Results equal: %t\n\n", res.Verified)
	}
	printSummary(out, report.Stats)
	fmt.Fprintf(out, "Run %s started %s, finished in %s\n", report.RunID,
		report.Stats.GetStartTime().Format(time.RFC3339), report.Stats.GetRuntime().Round(time.Microsecond))
}

func printSummary(out io.Writer, rs *stats.RunStatistics) {
	failed := 0
	timings := rs.GetTimings()
	for _, t := range timings {
		if t.Failed {
			failed++
		}
	}
	fmt.Fprintf(out, "=== Summary ===\n")
	fmt.Fprintf(out, "Reductions: %d (%d failed), values summed: %s\n", len(timings), failed, formatNumber(rs.GetNumValuesProcessed()))
	for _, strategy := range []stats.Strategy{stats.LocalMerge, stats.SharedAtomic} {
		fastest, ok := rs.GetFastest(strategy)
		if !ok {
			fmt.Fprintf(out, "Fastest %s: none succeeded\n", strategy)
			continue
		}
		fmt.Fprintf(out, "Fastest %s: %d workers, %.2f ms\n", strategy, fastest.Workers, float64(fastest.Runtime.Microseconds())/1000)
	}
}

func printMeasurement(out io.Writer, label string, m bench.Measurement) {
	ms := float64(m.Runtime.Microseconds()) / 1000
	if m.Err != nil {
		// the full error, with any recovered stack trace, is logged by bench.Run
		fmt.Fprintf(out, "%s %.2f ms, failed (%s)\n", label, ms, describeFailure(m.Err))
		return
	}
	fmt.Fprintf(out, "%s %.2f ms, Sum: %s\n", label, ms, formatNumber(m.Total))
}

// describeFailure names the failing workers of a reduction error on one line
func describeFailure(err error) string {
	var failures []error
	if merr, ok := err.(*multierror.Error); ok {
		failures = merr.Errors
	} else {
		failures = []error{err}
	}
	workers := make([]string, 0, len(failures))
	for _, f := range failures {
		var wf perrors.WorkerFailureError
		if errors.As(f, &wf) {
			workers = append(workers, strconv.Itoa(wf.Worker))
		}
	}
	switch len(workers) {
	case 0:
		return "see log"
	case 1:
		return "worker " + workers[0]
	default:
		return "workers " + strings.Join(workers, ", ")
	}
}
