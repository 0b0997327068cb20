// SPDX-License-Identifier: MIT

//go:build nwunchecked

package scorematrix

// boundsChecked is off under the "nwunchecked" build tag. Get/Put then rely on
// the Go slice bounds check alone: memory stays safe, but an out-of-range
// column that still lands inside the flat buffer aliases a neighbouring row.
const boundsChecked = false
