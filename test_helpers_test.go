package superstring

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// toBytes converts string literals to the solver's input form.
func toBytes(strs ...string) [][]byte {
	out := make([][]byte, len(strs))
	for i, s := range strs {
		out[i] = []byte(s)
	}
	return out
}

// randomStrings creates n strings of length [minLen, maxLen] over alphabet.
// Small alphabets make overlaps and content ties frequent.
func randomStrings(rng *rand.Rand, n, minLen, maxLen int, alphabet string) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		s := make([]byte, minLen+rng.IntN(maxLen-minLen+1))
		for j := range s {
			s[j] = alphabet[rng.IntN(len(alphabet))]
		}
		out[i] = s
	}
	return out
}

// cloneAll deep-copies a string set.
func cloneAll(strs [][]byte) [][]byte {
	out := make([][]byte, len(strs))
	for i, s := range strs {
		out[i] = bytes.Clone(s)
	}
	return out
}

// requireSuperstring fails the test if any input is not a substring of result.
func requireSuperstring(t *testing.T, result []byte, inputs [][]byte) {
	t.Helper()
	for i, s := range inputs {
		if !bytes.Contains(result, s) {
			t.Fatalf("input %d %q is not a substring of result %q", i, s, result)
		}
	}
}

// referenceBestPair is the straightforward single-threaded search over the
// brute-force overlap definition.
func referenceBestPair(items [][]byte) BestPair {
	best := unsetPair
	for i := range items {
		for j := range items {
			if i == j {
				continue
			}
			cand := BestPair{I: i, J: j, Overlap: naiveOverlap(items[i], items[j])}
			if ComparePairs(items, cand, best) < 0 {
				best = cand
			}
		}
	}
	return best
}

func naiveOverlap(a, b []byte) int {
	best := 0
	for k := 0; k <= len(a) && k <= len(b); k++ {
		if bytes.Equal(a[len(a)-k:], b[:k]) {
			best = k
		}
	}
	return best
}
