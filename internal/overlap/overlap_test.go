package overlap

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

// naive is the reference definition: the largest k <= min(len(a), len(b))
// with a[len(a)-k:] == b[:k].
func naive(a, b []byte) int {
	best := 0
	for k := 0; k <= len(a) && k <= len(b); k++ {
		if string(a[len(a)-k:]) == string(b[:k]) {
			best = k
		}
	}
	return best
}

var kernels = []struct {
	name string
	fn   Func
}{
	{"descending", Descending},
	{"ascending", Ascending},
	{"prefix_function", PrefixFunction},
}

// randomString draws from a small alphabet so overlaps are frequent.
func randomString(rng *rand.Rand, maxLen int, alphabet string) []byte {
	n := rng.IntN(maxLen + 1)
	s := make([]byte, n)
	for i := range s {
		s[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return s
}

func TestOverlapNamedCases(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"empty_both", "", "", 0},
		{"empty_a", "", "abc", 0},
		{"empty_b", "abc", "", 0},
		{"single_match", "ab", "bc", 1},
		{"two_match", "abcd", "cdef", 2},
		{"no_match", "ab", "cd", 0},
		{"identical", "aaa", "aaa", 3},
		{"identical_mixed", "abcab", "abcab", 5},
		{"a_suffix_is_b", "xxabc", "abc", 3},
		{"b_prefix_is_a", "abc", "abcxx", 3},
		{"periodic", "abababab", "ababxx", 4},
		{"inner_match_only", "abcx", "bcxy", 3},
		{"reject_inner_substring", "xabcy", "abcz", 0},
		{"all_same_char_short_b", "aaaaaa", "aa", 2},
		{"binary_bytes", "\x00\xff\x00", "\xff\x00\x01", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range kernels {
				if got := k.fn([]byte(tc.a), []byte(tc.b)); got != tc.want {
					t.Errorf("%s(%q, %q) = %d, want %d", k.name, tc.a, tc.b, got, tc.want)
				}
			}
		})
	}
}

// TestOverlapMatchesNaive compares every kernel with the brute-force
// definition over random strings from several alphabets.
func TestOverlapMatchesNaive(t *testing.T) {
	rng := newTestRNG(t)
	alphabets := []string{"a", "ab", "ACGT", "abcdefghijklmnopqrstuvwxyz"}
	const iterations = 5000

	for i := 0; i < iterations; i++ {
		alphabet := alphabets[i%len(alphabets)]
		a := randomString(rng, 24, alphabet)
		b := randomString(rng, 24, alphabet)
		want := naive(a, b)
		for _, k := range kernels {
			if got := k.fn(a, b); got != want {
				t.Fatalf("iter %d: %s(%q, %q) = %d, want %d", i, k.name, a, b, got, want)
			}
		}
	}
}

// TestOverlapAdversarial covers inputs where early-exit and failure-table
// shortcuts are most likely to go wrong.
func TestOverlapAdversarial(t *testing.T) {
	rng := newTestRNG(t)

	var cases [][2][]byte
	for n := 0; n <= 40; n++ {
		same := bytes.Repeat([]byte("a"), n)
		cases = append(cases, [2][]byte{same, bytes.Repeat([]byte("a"), rng.IntN(41))})

		// Full overlap: b starts with the whole of a's tail.
		s := randomString(rng, 40, "ab")
		cases = append(cases, [2][]byte{s, append(bytes.Clone(s), randomString(rng, 8, "ab")...)})

		// Zero overlap: disjoint alphabets.
		cases = append(cases, [2][]byte{randomString(rng, 40, "ab"), randomString(rng, 40, "cd")})

		// Near miss: periodic text with a broken last byte.
		p := bytes.Repeat([]byte("aab"), n/3+1)
		q := bytes.Clone(p)
		q[len(q)-1] = 'c'
		cases = append(cases, [2][]byte{p, q}, [2][]byte{q, p})
	}

	for i, c := range cases {
		want := naive(c[0], c[1])
		for _, k := range kernels {
			if got := k.fn(c[0], c[1]); got != want {
				t.Fatalf("case %d: %s(%q, %q) = %d, want %d", i, k.name, c[0], c[1], got, want)
			}
		}
	}
}

// TestOverlapBounds verifies the result never exceeds the shorter input.
func TestOverlapBounds(t *testing.T) {
	rng := newTestRNG(t)
	for i := 0; i < 2000; i++ {
		a := randomString(rng, 16, "ab")
		b := randomString(rng, 16, "ab")
		for _, k := range kernels {
			got := k.fn(a, b)
			if got < 0 || got > min(len(a), len(b)) {
				t.Fatalf("iter %d: %s(%q, %q) = %d out of [0, %d]", i, k.name, a, b, got, min(len(a), len(b)))
			}
		}
	}
}

func TestFailureTable(t *testing.T) {
	got := failureTable([]byte("aabaaab"))
	want := []int{0, 1, 0, 1, 2, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("failureTable(aabaaab) = %v, want %v", got, want)
		}
	}
}

func BenchmarkOverlap(b *testing.B) {
	x := bytes.Repeat([]byte("ACGTTGCA"), 64)
	y := append(bytes.Clone(x[len(x)-100:]), bytes.Repeat([]byte("T"), 400)...)
	for _, k := range kernels {
		b.Run(k.name, func(b *testing.B) {
			for b.Loop() {
				k.fn(x, y)
			}
		})
	}
}
