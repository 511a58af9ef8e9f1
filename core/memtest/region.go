package memtest

import (
	"encoding/binary"
	"errors"
	"fmt"

	"memcheck-core/partition"
)

// Region is the memory under test: a word-aligned window of 32-bit
// little-endian words. The base address is the caller's label for the
// window (reports and partitions speak addresses, not slice indices); the
// backing bytes may be supplied by the caller or allocated here. The caller
// guarantees the backing store overlaps nothing the test itself depends on.
type Region struct {
	base uint32
	buf  []byte
}

// NewRegion allocates a zeroed region of the given word count labelled from
// base.
func NewRegion(base uint32, words int) (*Region, error) {
	if words <= 0 {
		return nil, errors.New("memtest: region word count must be positive")
	}
	return Wrap(base, make([]byte, words*partition.WordSize))
}

// Wrap builds a region over caller-supplied backing bytes.
func Wrap(base uint32, buf []byte) (*Region, error) {
	if base%partition.WordSize != 0 {
		return nil, fmt.Errorf("memtest: base address %#x is not word-aligned", base)
	}
	if len(buf) == 0 || len(buf)%partition.WordSize != 0 {
		return nil, fmt.Errorf("memtest: backing store of %d bytes is not a whole number of words", len(buf))
	}
	// Strictly below: a window ending exactly at 2^32 would wrap Range's
	// half-open Last to 0.
	if uint64(base)+uint64(len(buf)) >= 1<<32 {
		return nil, fmt.Errorf("memtest: window of %d bytes from %#x must end below the top of the 32-bit address space", len(buf), base)
	}
	return &Region{base: base, buf: buf}, nil
}

// Range returns the region's address window.
func (r *Region) Range() partition.Range {
	return partition.Range{First: r.base, Last: r.base + uint32(len(r.buf))}
}

// Words returns the region size in words.
func (r *Region) Words() int { return len(r.buf) / partition.WordSize }

// Bytes exposes the backing store, e.g. for page-locking it.
func (r *Region) Bytes() []byte { return r.buf }

// Load reads the word at addr. addr must lie inside Range.
func (r *Region) Load(addr uint32) uint32 {
	return binary.LittleEndian.Uint32(r.buf[addr-r.base:])
}

// Store writes the word at addr. addr must lie inside Range.
func (r *Region) Store(addr uint32, w uint32) {
	binary.LittleEndian.PutUint32(r.buf[addr-r.base:], w)
}

// FlipBit inverts one bit of the word at addr; fault injection for
// self-tests and drills.
func (r *Region) FlipBit(addr uint32, bit uint) {
	r.Store(addr, r.Load(addr)^(1<<(bit&31)))
}
