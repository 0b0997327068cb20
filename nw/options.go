// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/katalvlaran/nwalign/scorematrix"
)

// DefaultGapSymbol is the symbol inserted into aligned strings at gaps.
const DefaultGapSymbol = '-'

// Option configures Align, Score and AlignBatch via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the alignment is invoked.
type Option func(*Options)

// Options holds the parameters of one alignment.
type Options struct {
	// Scoring holds match, mismatch and gap scores.
	Scoring Scoring

	// Symbols selects byte or rune symbols.
	Symbols Symbols

	// MemoryMode selects FullMatrix or TwoRows storage.
	MemoryMode MemoryMode

	// Traceback requests the aligned strings and edit operations.
	Traceback bool

	// GapSymbol is inserted at gaps. Must be a single byte in Bytes mode.
	GapSymbol rune

	// MaxCells caps the score matrix size (0 = platform limit only).
	MaxCells int

	// KeepMatrix hands the filled matrix to the caller in Result.Matrix.
	KeepMatrix bool

	// gapSet records that Gap was chosen explicitly and must not follow Mismatch.
	gapSet bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - DefaultScoring() (+1 / −1 / gap = mismatch)
//   - Bytes symbols, FullMatrix storage, no traceback
//   - DefaultGapSymbol and scorematrix.DefaultMaxCells
func DefaultOptions() Options {
	return Options{
		Scoring:    DefaultScoring(),
		Symbols:    Bytes,
		MemoryMode: FullMatrix,
		GapSymbol:  DefaultGapSymbol,
		MaxCells:   scorematrix.DefaultMaxCells,
	}
}

// scoreLimit bounds every scoring parameter to the int32 range.
const scoreLimit = math.MaxInt32

// checkScore records a violation for parameters outside ±scoreLimit.
func (o *Options) checkScore(name string, v int) bool {
	if v > scoreLimit || v < -scoreLimit {
		o.err = fmt.Errorf("%w: %s score %d outside ±%d", ErrOptionViolation, name, v, scoreLimit)

		return false
	}

	return true
}

// WithScoring sets all three scores at once. Gap no longer follows Mismatch.
func WithScoring(s Scoring) Option {
	return func(o *Options) {
		if !o.checkScore("match", s.Match) || !o.checkScore("mismatch", s.Mismatch) || !o.checkScore("gap", s.Gap) {
			return
		}
		o.Scoring = s
		o.gapSet = true
	}
}

// WithMatch sets the match score.
func WithMatch(v int) Option {
	return func(o *Options) {
		if o.checkScore("match", v) {
			o.Scoring.Match = v
		}
	}
}

// WithMismatch sets the mismatch score. Unless a gap score was set explicitly,
// the gap penalty follows the mismatch score.
func WithMismatch(v int) Option {
	return func(o *Options) {
		if !o.checkScore("mismatch", v) {
			return
		}
		o.Scoring.Mismatch = v
		if !o.gapSet {
			o.Scoring.Gap = v
		}
	}
}

// WithGap sets the per-symbol gap penalty independently of the mismatch score.
func WithGap(v int) Option {
	return func(o *Options) {
		if o.checkScore("gap", v) {
			o.Scoring.Gap = v
			o.gapSet = true
		}
	}
}

// WithSymbols selects byte or rune symbols.
func WithSymbols(s Symbols) Option {
	return func(o *Options) {
		switch s {
		case Bytes, Runes:
			o.Symbols = s
		default:
			o.err = fmt.Errorf("%w: unknown symbols mode %v", ErrOptionViolation, s)
		}
	}
}

// WithMemoryMode selects FullMatrix or TwoRows storage.
func WithMemoryMode(m MemoryMode) Option {
	return func(o *Options) {
		switch m {
		case FullMatrix, TwoRows:
			o.MemoryMode = m
		default:
			o.err = fmt.Errorf("%w: unknown memory mode %d", ErrOptionViolation, m)
		}
	}
}

// WithTraceback requests aligned strings and edit operations.
func WithTraceback(on bool) Option {
	return func(o *Options) {
		o.Traceback = on
	}
}

// WithGapSymbol sets the symbol inserted at gaps.
func WithGapSymbol(r rune) Option {
	return func(o *Options) {
		if !utf8.ValidRune(r) {
			o.err = fmt.Errorf("%w: invalid gap symbol %U", ErrOptionViolation, r)

			return
		}
		o.GapSymbol = r
	}
}

// WithMaxCells sets the score matrix cell budget.
//
//	n > 0:  (m+1)·(n+1) must not exceed n, else ErrAllocation
//	n == 0: no budget beyond the platform's addressable size
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCells cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxCells = n
	}
}

// WithKeepMatrix hands the filled matrix to the caller in Result.Matrix.
func WithKeepMatrix(on bool) Option {
	return func(o *Options) {
		o.KeepMatrix = on
	}
}

// resolveOptions applies opts over DefaultOptions and checks combinations.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.MemoryMode != FullMatrix && (o.Traceback || o.KeepMatrix) {
		return o, ErrTracebackNeedsMatrix
	}
	if o.Symbols == Bytes && o.GapSymbol >= utf8.RuneSelf {
		return o, fmt.Errorf("%w: gap symbol %q is not a single byte", ErrOptionViolation, o.GapSymbol)
	}

	return o, nil
}
