package superstring

import (
	"bytes"
	"fmt"

	sserrors "github.com/tamirms/superstring/errors"
)

// fallbackPair is merged when a search over two or more strings yields no
// candidate. That cannot happen for a correct search; the substitute only
// guarantees the loop still shrinks the set.
var fallbackPair = BestPair{I: 0, J: 1, Overlap: 0}

// Stats holds counters for a solve.
type Stats struct {
	Inputs      int    // Strings passed to NewSolver
	Deduped     int    // Duplicates dropped by WithDedupe
	Merges      int    // Completed merge iterations
	Comparisons uint64 // Ordered pairs evaluated across all searches
	Fallbacks   int    // Iterations that used fallbackPair; nonzero means a search defect
}

// MergeEvent describes one completed merge iteration.
type MergeEvent struct {
	Iteration int      // 1-based
	Pair      BestPair // Indices into the set before compaction
	MergedLen int      // Length of the new string
	Remaining int      // Set size after compaction
}

// Solver computes a greedy superstring one merge at a time.
//
// Usage:
//
//	s, err := superstring.NewSolver(strs, superstring.WithWorkers(8))
//	if err != nil { return err }
//	result, err := s.Run()
//
// Each Step searches all ordered pairs for the best overlap, merges that
// pair, and compacts the set, reducing it by exactly one string. A set of n
// strings is done after n-1 steps.
//
// A Solver is NOT safe for concurrent use.
type Solver struct {
	cfg      *solveConfig
	set      *WorkingSet
	searcher *pairSearcher
	stats    Stats
}

// NewSolver creates a solver over strs. The outer slice is copied and the
// strings are never modified, but they must not change while the solver runs.
func NewSolver(strs [][]byte, opts ...SolveOption) (*Solver, error) {
	if len(strs) == 0 {
		return nil, sserrors.ErrEmptyInput
	}

	cfg, err := newSolveConfig(opts)
	if err != nil {
		return nil, err
	}

	searcher, err := newPairSearcher(cfg)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		cfg:      cfg,
		searcher: searcher,
		stats:    Stats{Inputs: len(strs)},
	}

	if cfg.dedupe {
		unique := dedupe(strs)
		s.stats.Deduped = len(strs) - len(unique)
		strs = unique
	}
	s.set = newWorkingSetWithConfig(strs, cfg)

	return s, nil
}

// Len returns the number of strings left in the working set.
func (s *Solver) Len() int {
	return s.set.Len()
}

// Done reports whether the set has been reduced to a single string.
func (s *Solver) Done() bool {
	return s.set.Len() <= 1
}

// Stats returns the counters accumulated so far.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Step performs one merge iteration. Returns ErrSolverDone if only one
// string remains.
func (s *Solver) Step() error {
	if s.Done() {
		return sserrors.ErrSolverDone
	}

	pair, comparisons, err := s.searcher.search(s.set.items)
	if err != nil {
		return fmt.Errorf("pair search: %w", err)
	}
	s.stats.Comparisons += comparisons

	pair, ok := resolvePair(pair)
	if !ok {
		s.stats.Fallbacks++
	}

	merged := Merge(s.set.At(pair.I), s.set.At(pair.J), pair.Overlap)
	if err := s.set.Compact(pair, merged); err != nil {
		return fmt.Errorf("compact: %w", err)
	}
	s.stats.Merges++

	if s.cfg.observer != nil {
		s.cfg.observer(MergeEvent{
			Iteration: s.stats.Merges,
			Pair:      pair,
			MergedLen: len(merged),
			Remaining: s.set.Len(),
		})
	}
	return nil
}

// Run steps until one string remains and returns a copy of it. The copy is
// independent of the solver and of the input strings.
func (s *Solver) Run() ([]byte, error) {
	for !s.Done() {
		if err := s.Step(); err != nil {
			return nil, err
		}
	}
	return bytes.Clone(s.set.At(0)), nil
}

// Solve returns a greedy superstring of strs: a string containing every
// input as a contiguous substring. The result is not necessarily the
// shortest such string.
func Solve(strs [][]byte, opts ...SolveOption) ([]byte, error) {
	s, err := NewSolver(strs, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run()
}

// resolvePair returns pair if it is set, and fallbackPair with ok == false
// otherwise.
func resolvePair(pair BestPair) (BestPair, bool) {
	if pair.IsSet() {
		return pair, true
	}
	return fallbackPair, false
}
