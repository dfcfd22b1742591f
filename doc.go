// Package superstring computes approximate shortest common superstrings with
// the greedy merge heuristic.
//
// Starting from the input set, the solver repeatedly finds the ordered pair
// (a, b) whose suffix/prefix overlap is longest, replaces both with their
// merge, and stops when one string remains. The result contains every input
// as a contiguous substring. It is not guaranteed to be the shortest such
// string; the exact problem is NP-hard.
//
// # Basic Usage
//
//	result, err := superstring.Solve([][]byte{
//	    []byte("abcd"), []byte("cdef"), []byte("efgh"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s\n", result) // abcdefgh
//
// Parallel search over 8 goroutines:
//
//	result, err := superstring.Solve(strs, superstring.WithWorkers(8))
//
// # Determinism
//
// Ties between equally overlapping pairs are broken by the contents of the
// strings (see ComparePairs), never by scan order. The result is therefore
// identical for every worker count, partition count and partition mode.
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: solver.go (Solve, Solver), solver_options.go (SolveOption, With* functions)
//   - Pair search: search.go (FindBestPair, partitioned fork-join search), pair.go (BestPair, ComparePairs)
//   - Merge and compaction: merge.go (Merge), workingset.go (WorkingSet, staged parallel shift)
//   - Overlap kernels: algorithm.go (OverlapAlgorithmID dispatch), internal/overlap/
//   - Helpers: dedupe.go (WithDedupe), digest.go (Digest, DigestSet)
//   - Input and tooling: internal/input/ (text format, mmap, compression), internal/readsim/,
//     internal/config/, cmd/superstring/, cmd/bench/
package superstring
