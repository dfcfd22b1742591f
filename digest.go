package superstring

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the xxHash64 of s. Used to compare results across runs
// without keeping them around.
func Digest(s []byte) uint64 {
	return xxhash.Sum64(s)
}

// DigestSet returns the xxHash64 of an ordered string set. Each string is
// length-prefixed, so different splits of the same bytes hash differently.
func DigestSet(strs [][]byte) uint64 {
	h := xxhash.New()
	var lenBuf [8]byte
	for _, s := range strs {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(s)))
		_, _ = h.Write(lenBuf[:]) // xxhash.Digest.Write never fails
		_, _ = h.Write(s)
	}
	return h.Sum64()
}
