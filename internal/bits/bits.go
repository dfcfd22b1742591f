// Package bits provides low-level range arithmetic primitives.
package bits

import "math/bits"

// PartBounds returns the half-open range [lo, hi) of part idx when [0, total)
// is split into parts contiguous, near-equal ranges. Part sizes differ by at
// most one and the ranges tile [0, total) in order. Uses a 128-bit product so
// total*parts cannot overflow.
//
// Precondition: parts > 0 and 0 <= idx < parts.
func PartBounds(total uint64, parts, idx int) (lo, hi uint64) {
	return scaleDown(total, idx, parts), scaleDown(total, idx+1, parts)
}

// scaleDown computes floor(total*k/parts) for 0 <= k <= parts.
// The high word of total*k is below parts, so Div64 cannot overflow.
func scaleDown(total uint64, k, parts int) uint64 {
	hi, lo := bits.Mul64(total, uint64(k))
	q, _ := bits.Div64(hi, lo, uint64(parts))
	return q
}
