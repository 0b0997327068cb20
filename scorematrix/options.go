// SPDX-License-Identifier: MIT

package scorematrix

import "fmt"

// DefaultMaxCells is the default cell budget of New: 1<<28 cells, i.e. 2 GiB of
// int cells on 64-bit platforms. Larger matrices need an explicit WithMaxCells.
const DefaultMaxCells = 1 << 28

// Option configures New.
type Option func(*Options)

// Options holds the effective allocation policy after applying Option setters.
type Options struct {
	// MaxCells caps rows×cols. Zero means "platform limit only".
	MaxCells int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the allocation policy used when New gets no options.
func DefaultOptions() Options {
	return Options{MaxCells: DefaultMaxCells}
}

// WithMaxCells sets the cell budget.
//
//	n > 0:  rows×cols must not exceed n
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

// gatherOptions applies opts over the defaults and surfaces the first violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
