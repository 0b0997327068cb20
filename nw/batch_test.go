// SPDX-License-Identifier: MIT

package nw_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlignBatch_Order verifies results keep input order and match single calls.
func TestAlignBatch_Order(t *testing.T) {
	ctx := context.Background()
	pairs := make([]nw.Pair, 0, 40)
	for i := 0; i < 40; i++ {
		pairs = append(pairs, nw.Pair{
			ID: fmt.Sprintf("p%02d", i),
			A:  strings.Repeat("ACGT", i%5),
			B:  strings.Repeat("AGT", i%7),
		})
	}

	results, err := nw.AlignBatch(ctx, pairs, 4, nw.WithTraceback(true))
	require.NoError(t, err)
	require.Len(t, results, len(pairs))

	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, pairs[i], r.Pair)
		want, err := nw.Score(ctx, pairs[i].A, pairs[i].B)
		require.NoError(t, err)
		assert.Equal(t, want, r.Result.Score, "pair %s", r.Pair.ID)
		assert.NotNil(t, r.Result.Alignment)
	}
}

// TestAlignBatch_AllocationIsPerPair ensures an oversized pair does not fail the batch.
func TestAlignBatch_AllocationIsPerPair(t *testing.T) {
	pairs := []nw.Pair{
		{ID: "small", A: "GATTACA", B: "GCATGCU"},
		{ID: "large", A: strings.Repeat("A", 100), B: strings.Repeat("C", 100)},
		{ID: "tiny", A: "AAAA", B: "AAAA"},
	}

	results, err := nw.AlignBatch(context.Background(), pairs, 2, nw.WithMaxCells(1000))
	require.NoError(t, err)

	require.NoError(t, results[0].Err)
	assert.Equal(t, 0, results[0].Result.Score)

	require.ErrorIs(t, results[1].Err, nw.ErrAllocation)
	assert.Nil(t, results[1].Result)

	require.NoError(t, results[2].Err)
	assert.Equal(t, 4, results[2].Result.Score)
}

// TestAlignBatch_Cancelled ensures cancellation is returned and every pair carries an error.
func TestAlignBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs := []nw.Pair{{ID: "a", A: "ACGT", B: "ACGT"}, {ID: "b", A: "AC", B: "GT"}}
	results, err := nw.AlignBatch(ctx, pairs, 1)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Result)
	}
}

// TestAlignBatch_BadOptions ensures option errors stop the batch before any work.
func TestAlignBatch_BadOptions(t *testing.T) {
	results, err := nw.AlignBatch(context.Background(), []nw.Pair{{A: "A", B: "A"}}, 0, nw.WithMaxCells(-1))
	require.ErrorIs(t, err, nw.ErrOptionViolation)
	assert.Nil(t, results)
}

// TestAlignBatch_Empty returns an empty result set.
func TestAlignBatch_Empty(t *testing.T) {
	results, err := nw.AlignBatch(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
