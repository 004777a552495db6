package main

import (
	"fmt"
	"io"

	"github.com/go-sif/parsum/datasource/file"
	"github.com/spf13/cobra"
)

func newSnapshotCommand(out io.Writer) *cobra.Command {
	sf := &sourceFlags{}
	var dest string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Generate a Buffer and save it as a compressed snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := sf.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			buf, err := sf.loadBuffer(logger)
			if err != nil {
				return err
			}
			if err := file.SaveSnapshot(dest, buf); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %s values to %s (fingerprint %016x)\n", formatNumber(int64(buf.Len())), dest, buf.Fingerprint())
			return nil
		},
	}
	addSourceFlags(cmd, sf)
	cmd.Flags().StringVar(&dest, "out", "", "path of the snapshot to write")
	cmd.MarkFlagRequired("out")
	return cmd
}
