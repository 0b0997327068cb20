// SPDX-License-Identifier: MIT

// Package nw computes Needleman–Wunsch global alignments between two symbol
// sequences with a linear gap penalty, with optional traceback.
//
// 🚀 What is Needleman–Wunsch?
//
//	A dynamic program over an (m+1)×(n+1) score matrix whose cell [i][j] holds
//	the best score of aligning the first i symbols of A with the first j
//	symbols of B. It accounts for both sequences end to end (global alignment)
//	and is exact under the given scoring scheme. Typical uses:
//	  • DNA / protein sequence comparison
//	  • edit-script style diffing of short strings
//	  • similarity scoring for clustering and deduplication
//
// ✨ Key features:
//   - flat score matrix (package scorematrix) with overflow-checked allocation
//   - configurable match / mismatch / gap scores; gap defaults to mismatch
//   - byte or Unicode-scalar symbols (WithSymbols)
//   - deterministic traceback (diagonal > delete > insert) with CIGAR output
//   - score-only two-row mode: O(min(N,M)) memory
//   - cancellation checked once per matrix row
//   - AlignBatch: parallel alignment of independent pairs
//
// ⚙️ Usage:
//
//	res, err := nw.Align(ctx, "GATTACA", "GCATGCU",
//	  nw.WithMatch(1),
//	  nw.WithMismatch(-1), // gap follows mismatch unless WithGap is given
//	  nw.WithTraceback(true),
//	)
//	if err != nil {
//	  // errors.Is(err, nw.ErrAllocation) for oversized inputs
//	}
//	fmt.Println(res.Score, res.Alignment.AlignedA, res.Alignment.AlignedB)
//
// Performance:
//
//   - Time:   O(N·M): exactly N·M recurrence evaluations + N+M boundary writes
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
package nw
