// SPDX-License-Identifier: MIT

package nw

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/nwalign/scorematrix"
)

// Scoring holds the three linear-gap scoring parameters.
//
// Fields:
//   - Match   : added on the diagonal when the two symbols are equal.
//   - Mismatch: added on the diagonal when the two symbols differ.
//   - Gap     : added for every symbol aligned against a gap.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring returns match=+1, mismatch=−1, gap=−1.
func DefaultScoring() Scoring {
	return ScoringFromMismatch(1, -1)
}

// ScoringFromMismatch builds the single-parameter model where the mismatch
// score doubles as the gap penalty.
func ScoringFromMismatch(match, mismatch int) Scoring {
	return Scoring{Match: match, Mismatch: mismatch, Gap: mismatch}
}

// substitution returns the diagonal contribution for a pair of symbols.
func (s Scoring) substitution(equal bool) int {
	if equal {
		return s.Match
	}

	return s.Mismatch
}

// Symbols selects how input strings are split into symbols.
//
//   - Bytes: one symbol per byte. Exact for ASCII and other single-byte
//     encodings; a multi-byte UTF-8 character counts as several symbols.
//   - Runes: one symbol per Unicode scalar value (invalid UTF-8 bytes
//     become U+FFFD).
type Symbols int

const (
	// Bytes treats every byte as a symbol (default).
	Bytes Symbols = iota

	// Runes treats every Unicode scalar value as a symbol.
	Runes
)

// String implements fmt.Stringer.
func (s Symbols) String() string {
	switch s {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	default:
		return "Symbols(" + strconv.Itoa(int(s)) + ")"
	}
}

// MemoryMode controls how the score matrix is stored.
//
//   - FullMatrix: keep the entire (m+1)×(n+1) matrix. Required for traceback.
//   - TwoRows   : keep only two rows of the shorter sequence. Score only.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support traceback, O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no traceback, O(min(N,M)) memory.
	TwoRows
)

// Op is one column of an alignment.
type Op byte

const (
	// OpMatch aligns two equal symbols.
	OpMatch Op = 'M'
	// OpMismatch aligns two different symbols.
	OpMismatch Op = 'X'
	// OpDelete consumes a symbol of A against a gap in B.
	OpDelete Op = 'D'
	// OpInsert consumes a symbol of B against a gap in A.
	OpInsert Op = 'I'
)

// cigar maps an Op to its extended-CIGAR letter.
func (op Op) cigar() byte {
	switch op {
	case OpMatch:
		return '='
	case OpMismatch:
		return 'X'
	case OpDelete:
		return 'D'
	default:
		return 'I'
	}
}

// Alignment is the traceback of a filled matrix.
type Alignment struct {
	// Ops lists the alignment columns from the start of both sequences.
	Ops []Op

	// AlignedA and AlignedB are the inputs with gap symbols inserted.
	// Both hold len(Ops) symbols.
	AlignedA string
	AlignedB string

	Matches    int
	Mismatches int
	Gaps       int
}

// Len returns the number of alignment columns.
func (a *Alignment) Len() int { return len(a.Ops) }

// Identity returns Matches/Len, or 0 for an empty alignment.
func (a *Alignment) Identity() float64 {
	if len(a.Ops) == 0 {
		return 0
	}

	return float64(a.Matches) / float64(len(a.Ops))
}

// OpString returns Ops as a string of M/X/D/I letters.
func (a *Alignment) OpString() string {
	var sb strings.Builder
	sb.Grow(len(a.Ops))
	for _, op := range a.Ops {
		sb.WriteByte(byte(op))
	}

	return sb.String()
}

// CIGAR returns the run-length encoded extended CIGAR string (=, X, D, I).
func (a *Alignment) CIGAR() string {
	var sb strings.Builder
	for i := 0; i < len(a.Ops); {
		j := i
		for j < len(a.Ops) && a.Ops[j] == a.Ops[i] {
			j++
		}
		sb.WriteString(strconv.Itoa(j - i))
		sb.WriteByte(a.Ops[i].cigar())
		i = j
	}

	return sb.String()
}

// Result is the outcome of Align.
type Result struct {
	// Score is the optimal global alignment score, matrix[Rows-1][Cols-1].
	Score int

	// Rows and Cols are len(A)+1 and len(B)+1 in symbols.
	Rows int
	Cols int

	// Alignment is set when traceback was requested.
	Alignment *Alignment

	// Matrix is the filled matrix, set only with WithKeepMatrix. The caller
	// owns it and should Release it when done.
	Matrix *scorematrix.Matrix
}
