// SPDX-License-Identifier: MIT

// Package scorematrix provides the owned, flat, row-major integer buffer that
// backs dynamic-programming alignment.
//
// 🚀 What is a ScoreMatrix?
//
//	A single contiguous allocation of rows×cols signed integers addressed as
//	offset = row*cols + col. One allocation per matrix (never per row) keeps
//	the O(1)-per-cell access pattern and cache locality of the fill loops.
//
// ✨ Key features:
//   - overflow-checked sizing: rows×cols and the byte size are checked with
//     math/bits before anything is allocated
//   - cell budget (WithMaxCells) so oversized requests fail with ErrAllocation
//     instead of taking the process down
//   - safe public accessors (At/Set return ErrOutOfRange)
//   - hot-path accessors (Get/Put) whose per-axis check is an explicit
//     build-time tier: on by default, dropped by the "nwunchecked" build tag
//   - Release frees the buffer exactly once; it is safe to defer on every path
//
// ⚙️ Usage:
//
//	m, err := scorematrix.New(len(a)+1, len(b)+1)
//	if err != nil {
//	  // errors.Is(err, scorematrix.ErrAllocation)
//	}
//	defer m.Release()
//
//	m.Put(0, 0, 0)
//	v := m.Get(0, 0)
//
// Complexity:
//
//   - New: O(r·c) zero-init; At/Set/Get/Put: O(1); Release: O(1).
package scorematrix
