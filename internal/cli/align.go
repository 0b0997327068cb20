// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwalign/nw"
)

// NewScoreCommand creates the score command.
func NewScoreCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <seq-a> <seq-b>",
		Short: "Print the global alignment score of two sequences",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, rootOpts, args[0], args[1], false)
		},
	}
}

// NewAlignCommand creates the align command.
func NewAlignCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "align <seq-a> <seq-b>",
		Short: "Print the score and the optimal alignment of two sequences",
		Long: `Print the score and the optimal alignment of two sequences.

Ties between equally good moves are broken diagonal > deletion > insertion,
so the printed alignment is reproducible.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, rootOpts, args[0], args[1], true)
		},
	}
}

func runAlign(cmd *cobra.Command, opts *RootOptions, a, b string, traceback bool) error {
	p, err := resolveProfile(cmd, opts)
	if err != nil {
		return err
	}
	nwOpts := append(p.Options(), nw.WithTraceback(traceback))

	res, err := nw.Align(cmd.Context(), a, b, nwOpts...)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), opts.Format, "", res)
}
