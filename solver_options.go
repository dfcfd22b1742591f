package superstring

const (
	// defaultParallelCompactMin is the shortest tail that compaction splits
	// across workers. Shorter shifts are cheaper than the goroutine fan-out.
	defaultParallelCompactMin = 4096
)

// SolveOption is a functional option for configuring a solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	workers            int
	partitions         int // 0 = one partition per worker
	partition          PartitionMode
	algorithm          OverlapAlgorithmID
	parallelCompactMin int
	dedupe             bool
	observer           func(MergeEvent)
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		workers:            1, // Default to single-threaded; use WithWorkers(n) to parallelize
		partition:          PartitionFlat,
		algorithm:          OverlapDescending,
		parallelCompactMin: defaultParallelCompactMin,
	}
}

func newSolveConfig(opts []SolveOption) (*solveConfig, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = 1
	}
	if cfg.partitions <= 0 {
		cfg.partitions = cfg.workers
	}
	if cfg.parallelCompactMin < 1 {
		cfg.parallelCompactMin = 1
	}
	if err := cfg.partition.validate(); err != nil {
		return nil, err
	}
	if _, err := newOverlapFunc(cfg.algorithm); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithWorkers sets the number of goroutines used by the pair search and by
// compaction. Values <= 0 mean single-threaded.
func WithWorkers(n int) SolveOption {
	return func(c *solveConfig) {
		c.workers = n
	}
}

// WithPartitions sets how many ranges the pair space is split into for the
// search. Defaults to the worker count. More partitions than workers queue
// up behind the worker limit; the chosen pair does not depend on either.
func WithPartitions(n int) SolveOption {
	return func(c *solveConfig) {
		c.partitions = n
	}
}

// WithPartition selects how the pair space is split across partitions.
// Default is PartitionFlat.
func WithPartition(mode PartitionMode) SolveOption {
	return func(c *solveConfig) {
		c.partition = mode
	}
}

// WithOverlapAlgorithm sets the overlap kernel.
// Default is OverlapDescending.
func WithOverlapAlgorithm(algo OverlapAlgorithmID) SolveOption {
	return func(c *solveConfig) {
		c.algorithm = algo
	}
}

// WithParallelCompactMin sets the minimum number of shifted entries for which
// compaction runs its two staged phases on workers. Only applies with
// more than one worker.
func WithParallelCompactMin(n int) SolveOption {
	return func(c *solveConfig) {
		c.parallelCompactMin = n
	}
}

// WithDedupe drops byte-identical input strings before solving, keeping the
// first occurrence of each. The result still contains every input, but may
// differ from a solve without deduplication because the greedy order changes.
func WithDedupe() SolveOption {
	return func(c *solveConfig) {
		c.dedupe = true
	}
}

// WithObserver registers a callback invoked after every merge.
// The callback runs on the solving goroutine and must not retain ev.Pair
// indices beyond the call; they refer to the set before compaction.
func WithObserver(fn func(ev MergeEvent)) SolveOption {
	return func(c *solveConfig) {
		c.observer = fn
	}
}
