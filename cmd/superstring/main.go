// Superstring reads a set of strings and prints a greedy shortest common
// superstring of them.
//
// Usage:
//
//	echo "3 abcd cdef efgh" | go run ./cmd/superstring -workers 8
//	go run ./cmd/superstring -in reads.txt.zst -algo prefix -checksum
//
// Input is an integer n followed by n whitespace-separated strings, plain or
// zstd/gzip-compressed. The result is printed on stdout; diagnostics and
// timing go to stderr.
//
// Flags:
//
//	-in          Input file, memory-mapped (default: stdin)
//	-config      YAML config file; flags given explicitly override it
//	-workers     Goroutines for pair search and compaction (default: 1)
//	-partitions  Pair-space partitions (default: one per worker)
//	-partition   Partition mode: flat or rows (default: flat)
//	-algo        Overlap kernel: descending, ascending or prefix (default: descending)
//	-dedupe      Drop duplicate input strings before solving
//	-checksum    Log the xxHash64 of the result
//	-log-level   Log level (default: info)
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamirms/superstring"
	"github.com/tamirms/superstring/internal/config"
	"github.com/tamirms/superstring/internal/input"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defaults := config.Default()

	fs := flag.NewFlagSet("superstring", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inPath := fs.String("in", "", "input file (default: stdin)")
	configPath := fs.String("config", "", "YAML config file")
	workers := fs.Int("workers", defaults.Workers, "goroutines for pair search and compaction")
	partitions := fs.Int("partitions", defaults.Partitions, "pair-space partitions (0 = one per worker)")
	partition := fs.String("partition", defaults.Partition, "partition mode: flat or rows")
	algo := fs.String("algo", defaults.Algorithm, "overlap kernel: descending, ascending or prefix")
	dedupe := fs.Bool("dedupe", defaults.Dedupe, "drop duplicate input strings before solving")
	checksum := fs.Bool("checksum", defaults.Checksum, "log the xxHash64 of the result")
	logLevel := fs.String("log-level", defaults.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)

	cfg := defaults
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.WithError(err).Error("Failed to load config.")
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workers
		case "partitions":
			cfg.Partitions = *partitions
		case "partition":
			cfg.Partition = *partition
		case "algo":
			cfg.Algorithm = *algo
		case "dedupe":
			cfg.Dedupe = *dedupe
		case "checksum":
			cfg.Checksum = *checksum
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	opts, err := cfg.SolveOptions()
	if err != nil {
		log.WithError(err).Error("Invalid configuration.")
		return 1
	}
	level, _ := cfg.Level() // validated by SolveOptions
	log.SetLevel(level)

	var strs [][]byte
	if *inPath != "" {
		strs, err = input.ReadFile(*inPath)
	} else {
		strs, err = input.Read(stdin)
	}
	if err != nil {
		log.WithError(err).Error("Failed to read input.")
		return 1
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if len(strs) == 0 {
		fmt.Fprintln(out)
		return 0
	}

	if log.IsLevelEnabled(logrus.DebugLevel) {
		opts = append(opts, superstring.WithObserver(func(ev superstring.MergeEvent) {
			log.WithFields(logrus.Fields{
				"iteration": ev.Iteration,
				"i":         ev.Pair.I,
				"j":         ev.Pair.J,
				"overlap":   ev.Pair.Overlap,
				"length":    ev.MergedLen,
				"remaining": ev.Remaining,
			}).Debug("Merged pair.")
		}))
	}

	start := time.Now()
	solver, err := superstring.NewSolver(strs, opts...)
	if err != nil {
		log.WithError(err).Error("Failed to create solver.")
		return 1
	}
	result, err := solver.Run()
	if err != nil {
		log.WithError(err).Error("Solve failed.")
		return 1
	}
	elapsed := time.Since(start)

	if _, err := out.Write(result); err != nil {
		log.WithError(err).Error("Failed to write result.")
		return 1
	}
	if err := out.WriteByte('\n'); err != nil {
		log.WithError(err).Error("Failed to write result.")
		return 1
	}
	if err := out.Flush(); err != nil {
		log.WithError(err).Error("Failed to write result.")
		return 1
	}

	stats := solver.Stats()
	log.WithFields(logrus.Fields{
		"strings":     stats.Inputs,
		"deduped":     stats.Deduped,
		"merges":      stats.Merges,
		"comparisons": stats.Comparisons,
		"workers":     cfg.Workers,
		"length":      len(result),
		"elapsed":     elapsed,
	}).Info("Solve complete.")
	if stats.Fallbacks > 0 {
		log.WithField("fallbacks", stats.Fallbacks).Warn("Pair search returned no candidate; merged first two strings.")
	}
	if cfg.Checksum {
		log.WithField("xxhash64", fmt.Sprintf("%016x", superstring.Digest(result))).Info("Result checksum.")
	}
	return 0
}
