package superstring

import (
	"bytes"

	"github.com/zeebo/xxh3"
)

// dedupe returns strs without byte-identical repeats, keeping the first
// occurrence of each string in input order. Strings are bucketed by their
// xxh3 hash and confirmed with a byte comparison, so hash collisions never
// drop a distinct string.
func dedupe(strs [][]byte) [][]byte {
	buckets := make(map[uint64][]int, len(strs))
	unique := make([][]byte, 0, len(strs))

next:
	for _, s := range strs {
		h := xxh3.Hash(s)
		for _, idx := range buckets[h] {
			if bytes.Equal(unique[idx], s) {
				continue next
			}
		}
		buckets[h] = append(buckets[h], len(unique))
		unique = append(unique, s)
	}
	return unique
}
