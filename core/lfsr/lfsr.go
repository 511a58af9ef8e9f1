// Package lfsr implements the 32-bit Galois linear feedback shift register
// that generates the self-checking memory test pattern. Two interchangeable
// strategies realize the same sequence: BitSerial is the slow, obviously
// correct oracle; ByteTable consumes eight register bits per table lookup
// and is the production engine. Both are pure functions of the state word,
// so the expected pattern never needs to be stored — it is re-derived from
// the seed during verification.
package lfsr

const (
	// Poly is the feedback polynomial (maximal-period, Koopman notation).
	// See http://users.ece.cmu.edu/~koopman/lfsr/ for the family.
	Poly uint32 = 0x80000057

	// DefaultSeed is the conventional base seed; worker i runs from
	// DefaultSeed+i unless the caller overrides it.
	DefaultSeed uint32 = 0xdeadbeef
)

// Generator advances a 32-bit register by one word step. Implementations
// must be pure: identical input state yields identical output state, across
// processes and hosts.
type Generator interface {
	NextWord(state uint32) uint32
}

// Step is a single bit-serial recurrence step: shift right one bit and,
// if the shifted-out bit was set, fold the polynomial back in.
func Step(state, poly uint32) uint32 {
	out := state >> 1
	if state&1 != 0 {
		out ^= poly
	}
	return out
}

// BitSerial realizes the generator one bit at a time. It exists as the
// executable reference the accelerated table is validated against.
type BitSerial struct {
	Poly uint32
}

// NewBitSerial returns a bit-serial generator; poly 0 selects Poly.
func NewBitSerial(poly uint32) BitSerial {
	if poly == 0 {
		poly = Poly
	}
	return BitSerial{Poly: poly}
}

// NextByte applies eight bit-serial steps.
func (g BitSerial) NextByte(state uint32) uint32 {
	for i := 0; i < 8; i++ {
		state = Step(state, g.Poly)
	}
	return state
}

// NextWord applies thirty-two bit-serial steps.
func (g BitSerial) NextWord(state uint32) uint32 {
	for i := 0; i < 32; i++ {
		state = Step(state, g.Poly)
	}
	return state
}

// Table maps every low-byte value to the feedback accumulated over eight
// bit-serial steps. Each step consumes exactly the bit about to be shifted
// out, so the entry depends on the low byte alone; the upper 24 bits of the
// state never influence it. The table is read-only after construction and
// safe to share across workers without synchronization.
type Table [256]uint32

// ByteTable realizes the generator eight bits per lookup:
//
//	next = state>>8 ^ table[state&0xff]
//
// Bit-identical to eight BitSerial steps, four lookups per word.
type ByteTable struct {
	tab *Table
}

// NewByteTable returns a table-driven generator; a nil table selects the
// pre-computed table for Poly.
func NewByteTable(tab *Table) ByteTable {
	if tab == nil {
		tab = defaultTable
	}
	return ByteTable{tab: tab}
}

// NextByte advances the register by eight bits with one lookup.
func (g ByteTable) NextByte(state uint32) uint32 {
	return state>>8 ^ g.tab[state&0xff]
}

// NextWord advances the register by one 32-bit word.
func (g ByteTable) NextWord(state uint32) uint32 {
	s := g.NextByte(state)
	s = g.NextByte(s)
	s = g.NextByte(s)
	return g.NextByte(s)
}

// DefaultTable returns the pre-computed feedback table for Poly.
func DefaultTable() *Table { return defaultTable }

// DeriveTable computes the feedback table for an arbitrary polynomial from
// the bit-serial oracle. For a state equal to the bare byte b the shifted
// term b>>8 is zero, so eight oracle steps yield the table entry directly.
func DeriveTable(poly uint32) *Table {
	g := NewBitSerial(poly)
	var t Table
	for b := range t {
		t[b] = g.NextByte(uint32(b))
	}
	return &t
}
