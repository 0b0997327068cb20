// SPDX-License-Identifier: MIT

package nw

import (
	"context"

	"go.uber.org/zap"
)

// Align computes the global alignment of a and b.
//
// The matrix is released as soon as the score (and, with WithTraceback, the
// alignment) has been extracted, unless WithKeepMatrix hands it to the caller.
// Empty inputs are valid: aligning "" with b costs len(b)·Gap.
//
// Errors:
//   - ErrOptionViolation, ErrTracebackNeedsMatrix for bad options.
//   - ErrAllocation when the score matrix cannot be allocated.
//   - ctx.Err() when ctx is cancelled mid-fill.
//
// Example:
//
//	res, err := Align(ctx, "AAAA", "AAAA")
//	// res.Score == 4
func Align(ctx context.Context, a, b string, opts ...Option) (*Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	if o.Symbols == Runes {
		return alignSymbols(ctx, o, []rune(a), []rune(b), o.GapSymbol, runesToString)
	}

	return alignSymbols(ctx, o, []byte(a), []byte(b), byte(o.GapSymbol), bytesToString)
}

// Score returns only the alignment score of a and b. Traceback and
// WithKeepMatrix are ignored.
func Score(ctx context.Context, a, b string, opts ...Option) (int, error) {
	opts = append(opts[:len(opts):len(opts)], WithTraceback(false), WithKeepMatrix(false))
	res, err := Align(ctx, a, b, opts...)
	if err != nil {
		return 0, err
	}

	return res.Score, nil
}

// AlignSlices aligns arbitrary comparable symbols, e.g. tokens or codons.
// With WithTraceback the Alignment carries Ops and counts; AlignedA/AlignedB
// stay empty because T has no string form. Symbols and GapSymbol are ignored.
func AlignSlices[T comparable](ctx context.Context, a, b []T, opts ...Option) (*Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	var gap T

	return alignSymbols(ctx, o, a, b, gap, nil)
}

// alignSymbols runs the state machine on already-split symbols. render turns
// gapped symbol slices into strings; nil skips rendering.
func alignSymbols[T comparable](ctx context.Context, o Options, a, b []T, gap T, render func([]T) string) (*Result, error) {
	res := &Result{Rows: len(a) + 1, Cols: len(b) + 1}

	if o.MemoryMode == TwoRows {
		score, err := FillRolling(ctx, a, b, o.Scoring)
		if err != nil {
			return nil, err
		}
		res.Score = score

		return res, nil
	}

	m, err := Fill(ctx, a, b, o.Scoring, o.MaxCells)
	if err != nil {
		return nil, err
	}
	if !o.KeepMatrix {
		defer m.Release()
	}
	res.Score = m.Get(res.Rows-1, res.Cols-1)

	if o.Traceback {
		aln, err := Traceback(m, a, b, o.Scoring)
		if err != nil {
			return nil, err
		}
		if render != nil {
			outA, outB := renderAligned(aln.Ops, a, b, gap)
			aln.AlignedA, aln.AlignedB = render(outA), render(outB)
		}
		res.Alignment = aln
	}
	if o.KeepMatrix {
		res.Matrix = m
	}

	Logger().Debug("alignment complete",
		zap.Int("rows", res.Rows),
		zap.Int("cols", res.Cols),
		zap.Int("score", res.Score),
		zap.Bool("traceback", o.Traceback))

	return res, nil
}

func bytesToString(s []byte) string { return string(s) }

func runesToString(s []rune) string { return string(s) }
