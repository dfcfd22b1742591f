// Package overlap computes suffix/prefix overlaps between byte strings.
//
// Every kernel returns the largest k in [0, min(len(a), len(b))] such that the
// last k bytes of a equal the first k bytes of b. The kernels differ only in
// cost; their results are identical for every input.
package overlap

import "bytes"

// Func is the signature shared by all overlap kernels.
type Func func(a, b []byte) int

// Descending scans candidate lengths from the longest possible down to 1 and
// stops at the first match, which is maximal by construction.
func Descending(a, b []byte) int {
	m := min(len(a), len(b))
	tail := a[len(a)-m:]
	for k := m; k > 0; k-- {
		if bytes.Equal(tail[m-k:], b[:k]) {
			return k
		}
	}
	return 0
}

// Ascending checks every candidate length from 1 up and keeps the largest match.
func Ascending(a, b []byte) int {
	m := min(len(a), len(b))
	best := 0
	for k := 1; k <= m; k++ {
		if bytes.Equal(a[len(a)-k:], b[:k]) {
			best = k
		}
	}
	return best
}

// PrefixFunction runs a Knuth-Morris-Pratt match of b against the tail of a.
// The matcher state after consuming the last byte of a is the length of the
// longest prefix of b that is also a suffix of a. Runs in O(len(a)+len(b)).
func PrefixFunction(a, b []byte) int {
	m := min(len(a), len(b))
	if m == 0 {
		return 0
	}
	pattern := b[:m]
	table := failureTable(pattern)

	j := 0
	for _, c := range a[len(a)-m:] {
		// A full match cannot be extended; fall back before comparing.
		for j > 0 && (j == m || c != pattern[j]) {
			j = table[j-1]
		}
		if c == pattern[j] {
			j++
		}
	}
	return j
}

// failureTable returns, for each i, the length of the longest proper prefix
// of pattern[:i+1] that is also its suffix.
func failureTable(pattern []byte) []int {
	table := make([]int, len(pattern))
	for i := 1; i < len(pattern); i++ {
		j := table[i-1]
		for j > 0 && pattern[i] != pattern[j] {
			j = table[j-1]
		}
		if pattern[i] == pattern[j] {
			j++
		}
		table[i] = j
	}
	return table
}
