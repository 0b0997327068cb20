// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/nwalign/nw"
)

// resultJSON is the JSON (one object per line) form of a Result.
type resultJSON struct {
	ID       string  `json:"id,omitempty"`
	Score    int     `json:"score"`
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	AlignedA string  `json:"aligned_a,omitempty"`
	AlignedB string  `json:"aligned_b,omitempty"`
	CIGAR    string  `json:"cigar,omitempty"`
	Identity float64 `json:"identity,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// writeResult prints res in the requested format. id is empty for single alignments.
func writeResult(w io.Writer, format, id string, res *nw.Result) error {
	if format == FormatJSON {
		out := resultJSON{ID: id, Score: res.Score, Rows: res.Rows, Cols: res.Cols}
		if aln := res.Alignment; aln != nil {
			out.AlignedA, out.AlignedB = aln.AlignedA, aln.AlignedB
			out.CIGAR = aln.CIGAR()
			out.Identity = aln.Identity()
		}

		return json.NewEncoder(w).Encode(out)
	}

	var sb strings.Builder
	if id != "" {
		fmt.Fprintf(&sb, "%s\t", id)
	}
	if res.Alignment == nil {
		fmt.Fprintf(&sb, "%d\n", res.Score)
		_, err := io.WriteString(w, sb.String())

		return err
	}

	aln := res.Alignment
	fmt.Fprintf(&sb, "score: %d\n", res.Score)
	fmt.Fprintf(&sb, "%s\n%s\n%s\n", aln.AlignedA, midline(aln), aln.AlignedB)
	fmt.Fprintf(&sb, "cigar: %s\nidentity: %.3f\n", aln.CIGAR(), aln.Identity())
	_, err := io.WriteString(w, sb.String())

	return err
}

// writeFailure prints a per-pair failure of a batch.
func writeFailure(w io.Writer, format, id string, cause error) error {
	if format == FormatJSON {
		return json.NewEncoder(w).Encode(resultJSON{ID: id, Error: cause.Error()})
	}
	_, err := fmt.Fprintf(w, "%s\terror: %v\n", id, cause)

	return err
}

// midline marks matches with '|', mismatches with '.', gaps with ' '. It is
// only printed column-aligned when every aligned symbol is one character wide.
func midline(aln *nw.Alignment) string {
	if utf8.RuneCountInString(aln.AlignedA) != aln.Len() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(aln.Len())
	for _, op := range aln.Ops {
		switch op {
		case nw.OpMatch:
			sb.WriteByte('|')
		case nw.OpMismatch:
			sb.WriteByte('.')
		default:
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}
