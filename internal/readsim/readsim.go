// Package readsim generates deterministic synthetic sequencing workloads: a
// pseudo-random genome and overlapping reads sampled from it.
//
// Every byte and offset is derived from murmur3 hashes of its position under
// a seed, so a Config always produces the same genome and reads on every
// platform.
package readsim

import (
	"encoding/binary"
	"fmt"

	"github.com/spaolacci/murmur3"

	sserrors "github.com/tamirms/superstring/errors"
)

// DNA is the default alphabet.
const DNA = "ACGT"

// Config describes a workload.
type Config struct {
	GenomeLen int
	Reads     int
	ReadLen   int
	Alphabet  string // Defaults to DNA
	Seed      uint32
}

// Generate returns the genome and reads described by cfg.
func Generate(cfg Config) (genome []byte, reads [][]byte, err error) {
	if cfg.Alphabet == "" {
		cfg.Alphabet = DNA
	}
	switch {
	case cfg.GenomeLen <= 0:
		return nil, nil, fmt.Errorf("%w: genome length %d", sserrors.ErrInvalidConfig, cfg.GenomeLen)
	case cfg.ReadLen <= 0 || cfg.ReadLen > cfg.GenomeLen:
		return nil, nil, fmt.Errorf("%w: read length %d for genome length %d", sserrors.ErrInvalidConfig, cfg.ReadLen, cfg.GenomeLen)
	case cfg.Reads <= 0:
		return nil, nil, fmt.Errorf("%w: read count %d", sserrors.ErrInvalidConfig, cfg.Reads)
	}

	genome = Genome(cfg.GenomeLen, cfg.Alphabet, cfg.Seed)
	return genome, Reads(genome, cfg.Reads, cfg.ReadLen, cfg.Seed), nil
}

// Genome returns n bytes drawn from alphabet. Byte i is picked by the
// murmur3 hash of i under seed.
func Genome(n int, alphabet string, seed uint32) []byte {
	genome := make([]byte, n)
	var buf [8]byte
	for i := range genome {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		genome[i] = alphabet[murmur3.Sum32WithSeed(buf[:], seed)%uint32(len(alphabet))]
	}
	return genome
}

// Reads samples count substrings of length readLen from genome. The first
// read starts at offset 0 and, when count > 1, the last one ends at the end
// of the genome; the others start at hashed offsets. Reads are copies and
// do not alias genome.
//
// Precondition: 0 < readLen <= len(genome).
func Reads(genome []byte, count, readLen int, seed uint32) [][]byte {
	span := uint64(len(genome) - readLen + 1)
	reads := make([][]byte, count)
	var buf [8]byte
	for r := range reads {
		var off uint64
		switch {
		case r == 0:
			off = 0
		case r == count-1:
			off = span - 1
		default:
			binary.LittleEndian.PutUint64(buf[:], uint64(r))
			off = murmur3.Sum64WithSeed(buf[:], seed^0x9e3779b9) % span
		}
		reads[r] = append([]byte(nil), genome[off:off+uint64(readLen)]...)
	}
	return reads
}
