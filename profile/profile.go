// SPDX-License-Identifier: MIT

// Package profile loads alignment scoring profiles from YAML.
//
// A profile mirrors the nw options:
//
//	match: 1
//	mismatch: -1
//	gap: -2          # optional, defaults to mismatch
//	symbols: runes   # bytes (default) | runes
//	traceback: true
//	gap_symbol: "-"
//	max_cells: 0     # 0 = no budget beyond the platform limit
//	workers: 4       # batch parallelism, 0 = GOMAXPROCS
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/scorematrix"
)

// ErrInvalidProfile wraps every parse and validation failure.
var ErrInvalidProfile = errors.New("profile: invalid profile")

// Symbol mode names accepted in the symbols field.
const (
	SymbolsBytes = "bytes"
	SymbolsRunes = "runes"
)

// Profile is the YAML form of an alignment configuration.
type Profile struct {
	Match     int    `yaml:"match"`
	Mismatch  int    `yaml:"mismatch"`
	Gap       *int   `yaml:"gap,omitempty"`
	Symbols   string `yaml:"symbols,omitempty"`
	Traceback bool   `yaml:"traceback,omitempty"`
	GapSymbol string `yaml:"gap_symbol,omitempty"`
	MaxCells  int    `yaml:"max_cells,omitempty"`
	Workers   int    `yaml:"workers,omitempty"`
}

// Default returns the profile equivalent of nw.DefaultOptions.
func Default() *Profile {
	return &Profile{
		Match:     1,
		Mismatch:  -1,
		Symbols:   SymbolsBytes,
		GapSymbol: string(nw.DefaultGapSymbol),
		MaxCells:  scorematrix.DefaultMaxCells,
	}
}

// Parse decodes data over Default and validates the result. Unknown keys are rejected.
func Parse(data []byte) (*Profile, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Load reads and parses the profile at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// EffectiveGap returns Gap, or Mismatch when no gap was configured.
func (p *Profile) EffectiveGap() int {
	if p.Gap != nil {
		return *p.Gap
	}

	return p.Mismatch
}

// Validate checks field ranges that the YAML types cannot express.
func (p *Profile) Validate() error {
	switch p.Symbols {
	case "", SymbolsBytes, SymbolsRunes:
	default:
		return fmt.Errorf("%w: symbols must be %q or %q, got %q", ErrInvalidProfile, SymbolsBytes, SymbolsRunes, p.Symbols)
	}
	if p.GapSymbol != "" && utf8.RuneCountInString(p.GapSymbol) != 1 {
		return fmt.Errorf("%w: gap_symbol must be a single character, got %q", ErrInvalidProfile, p.GapSymbol)
	}
	if p.MaxCells < 0 {
		return fmt.Errorf("%w: max_cells cannot be negative (%d)", ErrInvalidProfile, p.MaxCells)
	}
	if p.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidProfile, p.Workers)
	}

	return nil
}

// Options converts the profile into nw options. Score ranges and the
// byte-mode gap symbol are checked by nw itself when the options are applied.
func (p *Profile) Options() []nw.Option {
	opts := []nw.Option{
		nw.WithScoring(nw.Scoring{Match: p.Match, Mismatch: p.Mismatch, Gap: p.EffectiveGap()}),
		nw.WithTraceback(p.Traceback),
		nw.WithMaxCells(p.MaxCells),
	}
	if p.Symbols == SymbolsRunes {
		opts = append(opts, nw.WithSymbols(nw.Runes))
	}
	if p.GapSymbol != "" {
		r, _ := utf8.DecodeRuneInString(p.GapSymbol)
		opts = append(opts, nw.WithGapSymbol(r))
	}

	return opts
}
