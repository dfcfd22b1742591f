package superstring

import "fmt"

// Merge returns a new string made of a followed by b with its first overlap
// bytes dropped, so the shared region appears once. Neither input is modified.
//
// Panics if overlap is negative or longer than either input.
func Merge(a, b []byte, overlap int) []byte {
	if overlap < 0 || overlap > len(a) || overlap > len(b) {
		panic(fmt.Sprintf("superstring: merge overlap %d out of range [0, %d]", overlap, min(len(a), len(b))))
	}
	merged := make([]byte, 0, len(a)+len(b)-overlap)
	merged = append(merged, a...)
	return append(merged, b[overlap:]...)
}
