// SPDX-License-Identifier: MIT

package nw

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pair is one independent alignment request.
type Pair struct {
	ID string
	A  string
	B  string
}

// BatchResult pairs a request with its outcome. Exactly one of Result and Err is set.
type BatchResult struct {
	Pair   Pair
	Result *Result
	Err    error
}

// AlignBatch aligns every pair with the same options on a bounded pool of
// workers. Each matrix fill stays sequential; parallelism is across pairs.
//
// A pair whose matrix cannot be allocated records ErrAllocation in its own
// BatchResult and the batch continues. Option errors are returned before any
// work starts; cancellation of ctx stops the batch and is returned together
// with the results collected so far. Results keep the input order.
//
// workers <= 0 means runtime.GOMAXPROCS(0).
func AlignBatch(ctx context.Context, pairs []Pair, workers int, opts ...Option) ([]BatchResult, error) {
	if _, err := resolveOptions(opts); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]BatchResult, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range pairs {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go directive is 1.21 (pre-loopvar semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i] = BatchResult{Pair: pairs[i], Err: err}

				return err
			}
			res, err := Align(gctx, pairs[i].A, pairs[i].B, opts...)
			out[i] = BatchResult{Pair: pairs[i], Result: res, Err: err}
			if err == nil {
				return nil
			}
			if errors.Is(err, ErrAllocation) {
				Logger().Warn("pair skipped",
					zap.String("id", pairs[i].ID),
					zap.Int("len_a", len(pairs[i].A)),
					zap.Int("len_b", len(pairs[i].B)),
					zap.Error(err))

				return nil
			}

			return err
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		// pairs never scheduled after cancellation carry the same error
		for i := range out {
			if out[i].Result == nil && out[i].Err == nil {
				out[i] = BatchResult{Pair: pairs[i], Err: err}
			}
		}

		return out, err
	}

	return out, nil
}
