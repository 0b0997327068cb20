// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/nwalign/fasta"
	"github.com/katalvlaran/nwalign/nw"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	var traceback bool

	cmd := &cobra.Command{
		Use:   "batch <pairs.fasta>",
		Short: "Align consecutive FASTA records pairwise",
		Long: `Align records 1 and 2, 3 and 4, ... of a FASTA file ("-" for stdin,
".gz" is decompressed). Pairs run in parallel on --workers goroutines.

A pair whose score matrix exceeds --max-cells is reported and skipped; the
command then exits with an error after printing every other result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, rootOpts, args[0], traceback)
		},
	}
	cmd.Flags().BoolVar(&traceback, "traceback", false, "include aligned sequences in the output")

	return cmd
}

func runBatch(cmd *cobra.Command, opts *RootOptions, path string, traceback bool) error {
	p, err := resolveProfile(cmd, opts)
	if err != nil {
		return err
	}

	records, err := fasta.ReadFile(path)
	if err != nil {
		return err
	}
	if len(records)%2 != 0 {
		return fmt.Errorf("%s: odd number of records (%d); batch aligns consecutive pairs", path, len(records))
	}
	pairs := make([]nw.Pair, 0, len(records)/2)
	for i := 0; i < len(records); i += 2 {
		pairs = append(pairs, nw.Pair{
			ID: records[i].ID + "/" + records[i+1].ID,
			A:  string(records[i].Seq),
			B:  string(records[i+1].Seq),
		})
	}
	opts.logger.Debug("batch loaded", zap.String("path", path), zap.Int("pairs", len(pairs)))

	nwOpts := append(p.Options(), nw.WithTraceback(traceback || p.Traceback))
	results, err := nw.AlignBatch(cmd.Context(), pairs, p.Workers, nwOpts...)
	if err != nil {
		return err
	}

	failed := 0
	w := cmd.OutOrStdout()
	for _, r := range results {
		if r.Err != nil {
			failed++
			if err := writeFailure(w, opts.Format, r.Pair.ID, r.Err); err != nil {
				return err
			}

			continue
		}
		if err := writeResult(w, opts.Format, r.Pair.ID, r.Result); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d pairs failed", failed, len(results))
	}

	return nil
}
