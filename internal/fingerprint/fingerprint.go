// Package fingerprint digests the expected pattern stream so runs on
// different hosts (or different builds) can be compared by pattern
// identity: equal parameters must yield equal fingerprints everywhere.
package fingerprint

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"memcheck-core/lfsr"
	"memcheck-core/partition"
)

// Pattern hashes the full expected word stream: every worker's sequence in
// partition order, little-endian, workers in ascending index order. It
// walks the same iterators the test walks, so any change to partitioning
// or generation shows up as a different digest.
func Pattern(gen lfsr.Generator, baseSeed uint32, workers int, r partition.Range) uint64 {
	if gen == nil {
		gen = lfsr.NewByteTable(nil)
	}
	d := xxhash.New()
	var b [4]byte
	for w := 0; w < workers; w++ {
		state := baseSeed + uint32(w)
		it := partition.ForWorker(w, workers, r)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
			state = gen.NextWord(state)
			binary.LittleEndian.PutUint32(b[:], state)
			_, _ = d.Write(b[:])
		}
	}
	return d.Sum64()
}
