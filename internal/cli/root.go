// SPDX-License-Identifier: MIT

// Package cli implements the nwalign command line.
package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/profile"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "text" | "json"
	Config    string // optional YAML profile
	Match     int
	Mismatch  int
	Gap       int
	Runes     bool
	GapSymbol string
	MaxCells  int
	Workers   int

	logger *zap.Logger
}

// NewRootCommand creates the root command for the nwalign CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "nwalign",
		Short: "Needleman-Wunsch global alignment",
		Long: `Compute optimal global alignment scores and tracebacks with the
Needleman-Wunsch algorithm (linear gap penalty).

Scoring comes from built-in defaults (match +1, mismatch -1, gap = mismatch),
an optional YAML profile (--config), then explicit flags, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.logger = newLogger(opts.Verbose, cmd.ErrOrStderr())
			nw.SetLogger(opts.logger)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	defaults := profile.Default()
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose (debug) logging to stderr")
	pf.StringVar(&opts.Format, "format", FormatText, "output format (text|json)")
	pf.StringVarP(&opts.Config, "config", "c", "", "YAML scoring profile")
	pf.IntVar(&opts.Match, "match", defaults.Match, "score for equal symbols")
	pf.IntVar(&opts.Mismatch, "mismatch", defaults.Mismatch, "score for different symbols")
	pf.IntVar(&opts.Gap, "gap", defaults.EffectiveGap(), "score per gap symbol (defaults to --mismatch)")
	pf.BoolVar(&opts.Runes, "runes", false, "treat input as Unicode characters instead of bytes")
	pf.StringVar(&opts.GapSymbol, "gap-symbol", defaults.GapSymbol, "symbol printed at gaps")
	pf.IntVar(&opts.MaxCells, "max-cells", defaults.MaxCells, "score matrix cell budget (0 = platform limit)")
	pf.IntVar(&opts.Workers, "workers", defaults.Workers, "batch worker count (0 = GOMAXPROCS)")

	cmd.AddCommand(NewScoreCommand(opts))
	cmd.AddCommand(NewAlignCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// resolveProfile layers defaults, the --config profile and explicitly set flags.
func resolveProfile(cmd *cobra.Command, opts *RootOptions) (*profile.Profile, error) {
	p := profile.Default()
	if opts.Config != "" {
		loaded, err := profile.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		p = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("match") {
		p.Match = opts.Match
	}
	if flags.Changed("mismatch") {
		p.Mismatch = opts.Mismatch
	}
	if flags.Changed("gap") {
		gap := opts.Gap
		p.Gap = &gap
	}
	if flags.Changed("runes") {
		p.Symbols = profile.SymbolsBytes
		if opts.Runes {
			p.Symbols = profile.SymbolsRunes
		}
	}
	if flags.Changed("gap-symbol") {
		p.GapSymbol = opts.GapSymbol
	}
	if flags.Changed("max-cells") {
		p.MaxCells = opts.MaxCells
	}
	if flags.Changed("workers") {
		p.Workers = opts.Workers
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	opts.logger.Debug("profile resolved",
		zap.Int("match", p.Match),
		zap.Int("mismatch", p.Mismatch),
		zap.Int("gap", p.EffectiveGap()),
		zap.String("symbols", p.Symbols),
		zap.String("config", opts.Config))

	return p, nil
}

// newLogger builds a console logger on w: warn level, or debug with verbose.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level))
}
