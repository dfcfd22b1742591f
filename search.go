package superstring

import (
	"fmt"

	sserrors "github.com/tamirms/superstring/errors"
	intbits "github.com/tamirms/superstring/internal/bits"
	"github.com/tamirms/superstring/internal/overlap"
	"golang.org/x/sync/errgroup"
)

// partialBest is the result of scanning one partition of the pair space.
type partialBest struct {
	pair        BestPair
	comparisons uint64
}

// pairSearcher finds the best pair of a working set. It owns the per-partition
// accumulators, which are reused across iterations.
//
// A pairSearcher is NOT safe for concurrent use; the items it scans must not
// be modified while search runs.
type pairSearcher struct {
	overlapFn  overlap.Func
	workers    int
	partitions int
	mode       PartitionMode
	partials   []partialBest
}

func newPairSearcher(cfg *solveConfig) (*pairSearcher, error) {
	fn, err := newOverlapFunc(cfg.algorithm)
	if err != nil {
		return nil, err
	}
	return &pairSearcher{
		overlapFn:  fn,
		workers:    cfg.workers,
		partitions: cfg.partitions,
		mode:       cfg.partition,
		partials:   make([]partialBest, cfg.partitions),
	}, nil
}

// FindBestPair evaluates every ordered pair (i, j), i != j, of items and
// returns the best one under ComparePairs. The result does not depend on
// the worker or partition count.
func FindBestPair(items [][]byte, opts ...SolveOption) (BestPair, error) {
	cfg, err := newSolveConfig(opts)
	if err != nil {
		return unsetPair, err
	}
	s, err := newPairSearcher(cfg)
	if err != nil {
		return unsetPair, err
	}
	pair, _, err := s.search(items)
	return pair, err
}

// search returns the best pair and the number of pairs evaluated.
func (s *pairSearcher) search(items [][]byte) (BestPair, uint64, error) {
	n := uint64(len(items))
	if n < 2 {
		return unsetPair, 0, sserrors.ErrTooFewStrings
	}

	if s.partitions == 1 {
		p := scanRange(items, s.overlapFn, 0, n*n)
		return p.pair, p.comparisons, nil
	}

	// Each partition writes only its own slot; the join below is the only
	// synchronization needed before the fold.
	var g errgroup.Group
	g.SetLimit(s.workers)
	for w := range s.partitions {
		start, end := s.bounds(n, w)
		g.Go(func() error {
			s.partials[w] = scanRange(items, s.overlapFn, start, end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return unsetPair, 0, fmt.Errorf("search worker: %w", err)
	}

	best := unsetPair
	var comparisons uint64
	for _, p := range s.partials {
		if ComparePairs(items, p.pair, best) < 0 {
			best = p.pair
		}
		comparisons += p.comparisons
	}
	return best, comparisons, nil
}

// bounds returns the flattened pair range [start, end) of partition w.
func (s *pairSearcher) bounds(n uint64, w int) (start, end uint64) {
	if s.mode == PartitionRows {
		lo, hi := intbits.PartBounds(n, s.partitions, w)
		return lo * n, hi * n
	}
	return intbits.PartBounds(n*n, s.partitions, w)
}

// scanRange evaluates the pairs whose flattened index i*n+j lies in
// [start, end), skipping i == j.
func scanRange(items [][]byte, fn overlap.Func, start, end uint64) partialBest {
	res := partialBest{pair: unsetPair}
	if start >= end {
		return res
	}
	n := uint64(len(items))
	i, j := start/n, start%n
	for p := start; p < end; p++ {
		if i != j {
			res.comparisons++
			cand := BestPair{I: int(i), J: int(j), Overlap: fn(items[i], items[j])}
			if ComparePairs(items, cand, res.pair) < 0 {
				res.pair = cand
			}
		}
		j++
		if j == n {
			i++
			j = 0
		}
	}
	return res
}
