package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-sif/parsum"
	"github.com/go-sif/parsum/datasource/file"
	"github.com/go-sif/parsum/datasource/memory"
	"github.com/go-sif/parsum/datasource/parser/jsonl"
	"github.com/go-sif/parsum/logging"
	"github.com/spf13/cobra"
)

// sourceFlags select where the Buffer comes from
type sourceFlags struct {
	size      int
	seed      int64
	minValue  int64
	maxValue  int64
	input     string
	valuePath string
	snapshot  string
	logLevel  string
}

func newRootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "parsum",
		Short:         "Benchmark parallel sum reductions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(out))
	root.AddCommand(newSnapshotCommand(out))
	return root
}

func addSourceFlags(cmd *cobra.Command, sf *sourceFlags) {
	cmd.Flags().IntVar(&sf.size, "size", memory.DefaultSize, "number of values to generate")
	cmd.Flags().Int64Var(&sf.seed, "seed", memory.DefaultSeed, "seed for generated values")
	cmd.Flags().Int64Var(&sf.minValue, "min", memory.DefaultMinValue, "smallest generated value")
	cmd.Flags().Int64Var(&sf.maxValue, "max", memory.DefaultMaxValue, "largest generated value")
	cmd.Flags().StringVar(&sf.logLevel, "log-level", "warn", "minimum log level (trace, debug, info, warn, error)")
}

func (sf *sourceFlags) logger(errOut io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(sf.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(errOut, level), nil
}

// loadBuffer reads the Buffer from --input or --snapshot, or generates one
func (sf *sourceFlags) loadBuffer(logger *logging.Logger) (*parsum.Buffer, error) {
	switch {
	case len(sf.input) > 0 && len(sf.snapshot) > 0:
		return nil, fmt.Errorf("--input and --snapshot cannot be combined")
	case len(sf.input) > 0:
		logger.Infof("Loading values from %s", sf.input)
		f, err := os.Open(sf.input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return jsonl.Parse(f, &jsonl.ParserConf{ValuePath: sf.valuePath})
	case len(sf.snapshot) > 0:
		logger.Infof("Loading snapshot %s", sf.snapshot)
		return file.LoadSnapshot(sf.snapshot)
	default:
		logger.Infof("Generating %d values with seed %d", sf.size, sf.seed)
		return memory.Generate(&memory.GeneratorConf{
			Size:     sf.size,
			Seed:     sf.seed,
			HasRange: true,
			MinValue: sf.minValue,
			MaxValue: sf.maxValue,
		})
	}
}

// formatNumber renders n with comma thousands separators
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String()
}
