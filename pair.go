package superstring

import "bytes"

// BestPair is a candidate merge: the string at I contributes its suffix and
// the string at J its prefix. Indices refer to the working set of a single
// iteration. Overlap == -1 marks a pair that was never evaluated.
type BestPair struct {
	I       int
	J       int
	Overlap int
}

// unsetPair is the initial accumulator state of every search.
var unsetPair = BestPair{I: -1, J: -1, Overlap: -1}

// IsSet reports whether p holds an evaluated pair.
func (p BestPair) IsSet() bool {
	return p.Overlap >= 0
}

// ComparePairs orders candidate pairs over items, returning a negative value
// when a is the better merge, positive when b is, and zero only when a == b.
//
// Order: longer overlap first, then the lexicographically smaller string at I,
// then the smaller string at J, then the smaller indices. The last rule only
// separates pairs with byte-identical contents, which merge to the same string.
// An unset pair loses to any set pair.
func ComparePairs(items [][]byte, a, b BestPair) int {
	if a.Overlap != b.Overlap {
		if a.Overlap > b.Overlap {
			return -1
		}
		return 1
	}
	if !a.IsSet() {
		// Both unset.
		return 0
	}
	if c := bytes.Compare(items[a.I], items[b.I]); c != 0 {
		return c
	}
	if c := bytes.Compare(items[a.J], items[b.J]); c != 0 {
		return c
	}
	if a.I != b.I {
		if a.I < b.I {
			return -1
		}
		return 1
	}
	if a.J != b.J {
		if a.J < b.J {
			return -1
		}
		return 1
	}
	return 0
}
