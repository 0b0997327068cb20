// Package nwalign computes optimal global alignments of two sequences with
// the Needleman-Wunsch algorithm and a linear gap penalty.
//
// What is in the box?
//
//   - Scoring: match / mismatch / gap, with gap following mismatch by default
//   - Score only or full traceback (aligned strings, ops, CIGAR, identity)
//   - Byte or Unicode (rune) symbols, plus any comparable symbol via generics
//   - Bounded memory: cell budget, two-row score-only mode, typed ErrAllocation
//   - Batch alignment of many pairs on a worker pool
//   - FASTA input and YAML scoring profiles for the nwalign CLI
//
// Everything is organized under these packages:
//
//	scorematrix/: flat row-major int matrix with checked allocation
//	nw/         : fill, traceback, Align / Score / AlignBatch
//	fasta/      : streaming FASTA reader (plain or gzip)
//	profile/    : YAML scoring profiles mapped onto nw options
//	cmd/nwalign : command line: score, align, batch
//
// Quick example:
//
//	res, _ := nw.Align(ctx, "GATTACA", "GCATGCU", nw.WithTraceback(true))
//	// res.Score == 0
//	// G-ATTACA
//	// GCA-TGCU
//
//	go install github.com/katalvlaran/nwalign/cmd/nwalign@latest
package nwalign
