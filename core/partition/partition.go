// Package partition maps (worker index, worker count, address bounds) to a
// disjoint, exhaustive sequence of word addresses. The mapping is pure
// arithmetic: worker i of N owns first+4i, first+4i+4N, … strictly below
// last, so the union over all workers covers every word reachable by the
// stride with no address claimed twice.
package partition

// WordSize is the addressing and verification granularity in bytes.
const WordSize = 4

// Range is a half-open, word-aligned byte-address window [First, Last).
type Range struct {
	First uint32
	Last  uint32
}

// Words returns the number of words in the range.
func (r Range) Words() int {
	if r.Last <= r.First {
		return 0
	}
	return int((r.Last - r.First) / WordSize)
}

// Aligned reports whether both bounds sit on word boundaries.
func (r Range) Aligned() bool {
	return r.First%WordSize == 0 && r.Last%WordSize == 0
}

// Divides reports whether the range splits into an exact number of stride
// cycles for the given worker count. Coverage holds either way — every
// word below Last belongs to worker (offset/WordSize) mod workers — but a
// partial final cycle gives the low-indexed workers one word more than the
// rest. Callers wanting equal per-worker load trim the range or reject it.
func Divides(workers int, r Range) bool {
	if workers < 1 || r.Last < r.First {
		return false
	}
	return (r.Last-r.First)%(WordSize*uint32(workers)) == 0
}

// Iter lazily yields one worker's addresses in ascending order. The zero
// value is empty; obtain one from ForWorker. Reset rewinds to the start so
// the same partition can drive both the write and the verify pass.
type Iter struct {
	start  uint32
	stride uint32
	last   uint32
	addr   uint32
}

// ForWorker returns the address iterator for worker (0-based) of workers.
func ForWorker(worker, workers int, r Range) *Iter {
	start := r.First + WordSize*uint32(worker)
	return &Iter{
		start:  start,
		stride: WordSize * uint32(workers),
		last:   r.Last,
		addr:   start,
	}
}

// Next returns the next address, or ok=false once the sequence is done.
func (it *Iter) Next() (addr uint32, ok bool) {
	if it.addr >= it.last {
		return 0, false
	}
	addr = it.addr
	it.addr += it.stride
	if it.addr < addr { // wrapped around the 32-bit address space
		it.addr = it.last
	}
	return addr, true
}

// Reset rewinds the iterator to its first address.
func (it *Iter) Reset() { it.addr = it.start }
