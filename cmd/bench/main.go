// Bench is a benchmarking tool for measuring greedy superstring solve time
// across worker counts on synthetic sequencing reads.
//
// Usage:
//
//	go run ./cmd/bench -genome 20000 -reads 1500 -readlen 100 -workers 1,2,4,8
//
// Flags:
//
//	-genome     Genome length in bases (default: 10,000)
//	-reads      Number of reads sampled from the genome (default: 800)
//	-readlen    Read length (default: 100)
//	-seed       Workload seed (default: 1)
//	-workers    Comma-separated worker counts to compare (default: 1,2,4)
//	-partition  Partition mode: flat or rows (default: flat)
//	-algo       Overlap kernel: descending, ascending or prefix (default: descending)
//	-cpuprofile Write a CPU profile of the solves to this file
//
// Every run must produce the same superstring; the tool exits non-zero if
// the result digests differ between worker counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamirms/superstring"
	"github.com/tamirms/superstring/internal/readsim"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

func parseWorkers(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid worker count %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

func main() {
	genomeFlag := flag.Int("genome", 10_000, "genome length in bases")
	readsFlag := flag.Int("reads", 800, "number of reads")
	readLenFlag := flag.Int("readlen", 100, "read length")
	seedFlag := flag.Uint("seed", 1, "workload seed")
	workersFlag := flag.String("workers", "1,2,4", "comma-separated worker counts")
	partitionFlag := flag.String("partition", "flat", "partition mode: flat or rows")
	algoFlag := flag.String("algo", "descending", "overlap kernel: descending, ascending or prefix")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file (solve phase only)")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	workerCounts, err := parseWorkers(*workersFlag)
	if err != nil {
		log.WithError(err).Fatal("Bad -workers flag.")
	}
	partition, err := superstring.ParsePartition(*partitionFlag)
	if err != nil {
		log.WithError(err).Fatal("Bad -partition flag.")
	}
	algo, err := superstring.ParseOverlapAlgorithm(*algoFlag)
	if err != nil {
		log.WithError(err).Fatal("Bad -algo flag.")
	}

	genStart := time.Now()
	genome, reads, err := readsim.Generate(readsim.Config{
		GenomeLen: *genomeFlag,
		Reads:     *readsFlag,
		ReadLen:   *readLenFlag,
		Seed:      uint32(*seedFlag),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to generate workload.")
	}
	log.WithFields(logrus.Fields{
		"genome":   len(genome),
		"reads":    len(reads),
		"readLen":  *readLenFlag,
		"inputSum": fmt.Sprintf("%016x", superstring.DigestSet(reads)),
		"elapsed":  time.Since(genStart),
	}).Info("Generated workload.")

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.WithError(err).Fatal("Could not create CPU profile.")
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Fatal("Could not start CPU profile.")
		}
		defer pprof.StopCPUProfile()
	}

	var (
		baseline  time.Duration
		firstSum  uint64
		mismatch  bool
		resultLen int
	)
	for k, workers := range workerCounts {
		runtime.GC()

		start := time.Now()
		solver, err := superstring.NewSolver(reads,
			superstring.WithWorkers(workers),
			superstring.WithPartition(partition),
			superstring.WithOverlapAlgorithm(algo))
		if err != nil {
			log.WithError(err).Fatal("NewSolver failed.")
		}
		result, err := solver.Run()
		if err != nil {
			log.WithError(err).Fatal("Solve failed.")
		}
		elapsed := time.Since(start)
		sum := superstring.Digest(result)
		stats := solver.Stats()

		if k == 0 {
			baseline, firstSum, resultLen = elapsed, sum, len(result)
		} else if sum != firstSum {
			mismatch = true
		}

		log.WithFields(logrus.Fields{
			"workers":     workers,
			"elapsed":     elapsed,
			"speedup":     fmt.Sprintf("%.2fx", float64(baseline)/float64(elapsed)),
			"comparisons": stats.Comparisons,
			"pairsPerSec": fmt.Sprintf("%.0f", float64(stats.Comparisons)/elapsed.Seconds()),
			"length":      len(result),
			"digest":      fmt.Sprintf("%016x", sum),
			"maxRSS":      fmt.Sprintf("%.1fMB", float64(getMaxRSS())/(1<<20)),
		}).Info("Solve complete.")
	}

	log.WithFields(logrus.Fields{
		"genome":      len(genome),
		"superstring": resultLen,
		"ratio":       fmt.Sprintf("%.3f", float64(resultLen)/float64(len(genome))),
	}).Info("Assembly size.")

	if mismatch {
		log.Error("Results differ between worker counts.")
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}
