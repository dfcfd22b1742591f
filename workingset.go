package superstring

import (
	"fmt"
	"slices"

	intbits "github.com/tamirms/superstring/internal/bits"
	"golang.org/x/sync/errgroup"
)

// WorkingSet is the dense, ordered sequence of strings a solve operates on.
// Indices run from 0 to Len()-1 with no gaps. Removal shifts later entries
// left, so untouched entries keep their relative order.
//
// A WorkingSet is NOT safe for concurrent use.
type WorkingSet struct {
	items [][]byte

	// Staged compaction (workers > 1)
	workers     int
	parallelMin int      // Shortest shift that is split across workers
	staging     [][]byte // Reused copy-out buffer for the shifted tail
}

// NewWorkingSet creates a working set over items. The outer slice is copied;
// the strings themselves are shared and must not be modified by the caller
// while the set is in use.
func NewWorkingSet(items [][]byte) *WorkingSet {
	return &WorkingSet{
		items:       slices.Clone(items),
		workers:     1,
		parallelMin: defaultParallelCompactMin,
	}
}

func newWorkingSetWithConfig(items [][]byte, cfg *solveConfig) *WorkingSet {
	ws := NewWorkingSet(items)
	ws.workers = cfg.workers
	ws.parallelMin = cfg.parallelCompactMin
	return ws
}

// Len returns the number of strings in the set.
func (ws *WorkingSet) Len() int {
	return len(ws.items)
}

// At returns the string at index i.
func (ws *WorkingSet) At(i int) []byte {
	return ws.items[i]
}

// ReplaceAt installs s at index i, dropping the previous occupant.
func (ws *WorkingSet) ReplaceAt(i int, s []byte) {
	ws.items[i] = s
}

// RemoveAt deletes the entry at index i and shifts every later entry left by
// one. The vacated tail slot is cleared so the set holds no stale reference.
func (ws *WorkingSet) RemoveAt(i int) error {
	n := len(ws.items)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("superstring: RemoveAt index %d out of range [0, %d)", i, n))
	}

	tail := n - i - 1
	if ws.workers > 1 && tail >= ws.parallelMin {
		if err := ws.shiftStaged(i); err != nil {
			return err
		}
	} else {
		copy(ws.items[i:], ws.items[i+1:])
	}

	ws.items[n-1] = nil
	ws.items = ws.items[:n-1]
	return nil
}

// Compact applies a merge: merged replaces the lower of the two pair indices
// and the higher one is removed. Both original strings leave the set.
func (ws *WorkingSet) Compact(pair BestPair, merged []byte) error {
	lo, hi := min(pair.I, pair.J), max(pair.I, pair.J)
	if lo == hi {
		panic(fmt.Sprintf("superstring: Compact with identical indices %d", lo))
	}
	ws.ReplaceAt(lo, merged)
	return ws.RemoveAt(hi)
}

// shiftStaged moves items[i+1:] to items[i:len-1] in two phases: the tail is
// first copied into the staging buffer, then copied back one slot lower.
// Each phase is split across workers and ends with a join, so no worker can
// read a slot another worker is overwriting.
func (ws *WorkingSet) shiftStaged(i int) error {
	n := len(ws.items)
	tail := n - i - 1
	if cap(ws.staging) < tail {
		ws.staging = make([][]byte, tail)
	}
	staging := ws.staging[:tail]
	src := ws.items[i+1 : n]
	dst := ws.items[i : n-1]

	if err := ws.fanOut(tail, func(lo, hi int) {
		copy(staging[lo:hi], src[lo:hi])
	}); err != nil {
		return fmt.Errorf("compaction copy-out: %w", err)
	}
	if err := ws.fanOut(tail, func(lo, hi int) {
		copy(dst[lo:hi], staging[lo:hi])
	}); err != nil {
		return fmt.Errorf("compaction copy-back: %w", err)
	}

	// Release references held by the staging buffer.
	clear(staging)
	return nil
}

// fanOut splits [0, total) into one contiguous range per worker and runs fn
// on each, returning once every range is done.
func (ws *WorkingSet) fanOut(total int, fn func(lo, hi int)) error {
	parts := min(ws.workers, total)
	var g errgroup.Group
	for w := range parts {
		lo, hi := intbits.PartBounds(uint64(total), parts, w)
		g.Go(func() error {
			fn(int(lo), int(hi))
			return nil
		})
	}
	return g.Wait()
}
