// SPDX-License-Identifier: MIT

//go:build !nwunchecked

package scorematrix

// boundsChecked enables the per-axis check in Get/Put. This is the default tier.
const boundsChecked = true
