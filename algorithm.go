package superstring

import (
	"fmt"

	sserrors "github.com/tamirms/superstring/errors"
	"github.com/tamirms/superstring/internal/overlap"
)

// OverlapAlgorithmID identifies the kernel used to compute suffix/prefix overlaps.
// All kernels return identical lengths; they differ only in cost.
type OverlapAlgorithmID uint8

const (
	// OverlapDescending tries the longest candidate first and stops at the
	// first match. Cheap when long overlaps are common.
	OverlapDescending OverlapAlgorithmID = 0

	// OverlapAscending checks every candidate length. Mostly useful as a
	// cross-check of the other kernels.
	OverlapAscending OverlapAlgorithmID = 1

	// OverlapPrefixFunction uses a Knuth-Morris-Pratt failure table and runs
	// in linear time. Preferred for long strings with short overlaps.
	OverlapPrefixFunction OverlapAlgorithmID = 2
)

// String returns the algorithm name.
func (a OverlapAlgorithmID) String() string {
	switch a {
	case OverlapDescending:
		return "descending"
	case OverlapAscending:
		return "ascending"
	case OverlapPrefixFunction:
		return "prefix"
	default:
		return "unknown"
	}
}

// ParseOverlapAlgorithm maps an algorithm name, as returned by String, to its ID.
func ParseOverlapAlgorithm(name string) (OverlapAlgorithmID, error) {
	for _, a := range []OverlapAlgorithmID{OverlapDescending, OverlapAscending, OverlapPrefixFunction} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", sserrors.ErrUnknownAlgorithm, name)
}

// newOverlapFunc returns the kernel for the given algorithm ID.
func newOverlapFunc(algo OverlapAlgorithmID) (overlap.Func, error) {
	switch algo {
	case OverlapDescending:
		return overlap.Descending, nil
	case OverlapAscending:
		return overlap.Ascending, nil
	case OverlapPrefixFunction:
		return overlap.PrefixFunction, nil
	default:
		return nil, fmt.Errorf("%w: %d", sserrors.ErrUnknownAlgorithm, algo)
	}
}

// Overlap returns the length of the longest suffix of a that equals a prefix
// of b. The result may be the full length of the shorter string, including
// when a and b are identical.
func Overlap(a, b []byte) int {
	return overlap.Descending(a, b)
}

// PartitionMode selects how the pair search splits the (i, j) index space.
type PartitionMode uint8

const (
	// PartitionFlat splits the flattened pair index i*n+j into equal ranges,
	// so every partition evaluates the same number of pairs.
	PartitionFlat PartitionMode = 0

	// PartitionRows assigns whole rows of i to partitions.
	PartitionRows PartitionMode = 1
)

// String returns the partition mode name.
func (m PartitionMode) String() string {
	switch m {
	case PartitionFlat:
		return "flat"
	case PartitionRows:
		return "rows"
	default:
		return "unknown"
	}
}

// ParsePartition maps a partition mode name, as returned by String, to its value.
func ParsePartition(name string) (PartitionMode, error) {
	switch name {
	case "flat":
		return PartitionFlat, nil
	case "rows":
		return PartitionRows, nil
	default:
		return 0, fmt.Errorf("%w: %q", sserrors.ErrUnknownPartition, name)
	}
}

func (m PartitionMode) validate() error {
	if m != PartitionFlat && m != PartitionRows {
		return fmt.Errorf("%w: %d", sserrors.ErrUnknownPartition, m)
	}
	return nil
}
