// SPDX-License-Identifier: MIT

package nw

import "github.com/katalvlaran/nwalign/scorematrix"

// Traceback walks a filled matrix from its last cell back to the origin and
// returns the alignment columns in forward order.
//
// Ties are broken with a fixed precedence so alignments are reproducible:
// diagonal (match/mismatch) > delete (gap in b) > insert (gap in a).
// On the first row only inserts are possible, on the first column only deletes.
//
// Errors:
//   - ErrMatrixMismatch if m is nil, released, or not (len(a)+1)×(len(b)+1).
//
// Complexity: O(len(a)+len(b)) time, O(len(a)+len(b)) memory.
func Traceback[T comparable](m *scorematrix.Matrix, a, b []T, s Scoring) (*Alignment, error) {
	if m == nil || m.Released() || m.Rows() != len(a)+1 || m.Cols() != len(b)+1 {
		return nil, ErrMatrixMismatch
	}

	var (
		i, j = len(a), len(b)
		aln  = &Alignment{Ops: make([]Op, 0, i+j)}
		cur  int
	)
	for i > 0 || j > 0 {
		cur = m.Get(i, j)
		switch {
		case i > 0 && j > 0 && cur == m.Get(i-1, j-1)+s.substitution(a[i-1] == b[j-1]):
			if a[i-1] == b[j-1] {
				aln.Ops = append(aln.Ops, OpMatch)
				aln.Matches++
			} else {
				aln.Ops = append(aln.Ops, OpMismatch)
				aln.Mismatches++
			}
			i--
			j--
		case i > 0 && (j == 0 || cur == m.Get(i-1, j)+s.Gap):
			aln.Ops = append(aln.Ops, OpDelete)
			aln.Gaps++
			i--
		default:
			aln.Ops = append(aln.Ops, OpInsert)
			aln.Gaps++
			j--
		}
	}

	// reverse in-place
	for l, r := 0, len(aln.Ops)-1; l < r; l, r = l+1, r-1 {
		aln.Ops[l], aln.Ops[r] = aln.Ops[r], aln.Ops[l]
	}

	return aln, nil
}

// renderAligned expands ops into the two gapped symbol sequences.
func renderAligned[T comparable](ops []Op, a, b []T, gap T) (outA, outB []T) {
	outA = make([]T, 0, len(ops))
	outB = make([]T, 0, len(ops))
	i, j := 0, 0
	for _, op := range ops {
		switch op {
		case OpMatch, OpMismatch:
			outA = append(outA, a[i])
			outB = append(outB, b[j])
			i++
			j++
		case OpDelete:
			outA = append(outA, a[i])
			outB = append(outB, gap)
			i++
		case OpInsert:
			outA = append(outA, gap)
			outB = append(outB, b[j])
			j++
		}
	}

	return outA, outB
}
