package lfsr

import "testing"

// First words of the sequence from the conventional seed, fixed forever.
// A change here means the generator is no longer bit-exact with deployed
// instances and every stored pattern fingerprint.
var goldenDeadbeef = []uint32{
	0xdab066b3, 0x28a1c7f5, 0x74ae9e79, 0x5d4ab03d, 0x3597d28a, 0x749bed08,
}

func TestKnownAnswerDeadbeef(t *testing.T) {
	for _, g := range []Generator{NewBitSerial(0), NewByteTable(nil)} {
		state := DefaultSeed
		for i, want := range goldenDeadbeef {
			state = g.NextWord(state)
			if state != want {
				t.Fatalf("%T word %d: got %#08x want %#08x", g, i, state, want)
			}
		}
	}
}

func TestStrategyEquivalence(t *testing.T) {
	seeds := []uint32{0, 0xdeadbeef, 0xffffffff}
	ser := NewBitSerial(0)
	tab := NewByteTable(nil)
	for _, seed := range seeds {
		s1, s2 := seed, seed
		for i := 0; i < 4096; i++ {
			s1 = ser.NextWord(s1)
			s2 = tab.NextWord(s2)
			if s1 != s2 {
				t.Fatalf("seed %#x diverges at word %d: serial %#08x table %#08x", seed, i, s1, s2)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	g := NewByteTable(nil)
	run := func() []uint32 {
		state := uint32(1)
		out := make([]uint32, 64)
		for i := range out {
			state = g.NextWord(state)
			out[i] = state
		}
		return out
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("word %d differs between runs: %#08x vs %#08x", i, a[i], b[i])
		}
	}
	if a[0] != 0x5d9fad35 {
		t.Fatalf("seed 1 first word: got %#08x want 0x5d9fad35", a[0])
	}
}

func TestDeriveTableMatchesBuiltin(t *testing.T) {
	got := DeriveTable(Poly)
	want := DefaultTable()
	for b := range want {
		if got[b] != want[b] {
			t.Fatalf("table[%#02x]: derived %#08x builtin %#08x", b, got[b], want[b])
		}
	}
}

// The byte lookup must depend on the low byte only: each bit-serial step
// consumes exactly the bit it shifts out, so the upper 24 bits ride along
// untouched by the feedback decision.
func TestByteStepIgnoresUpperBits(t *testing.T) {
	ser := NewBitSerial(0)
	tab := NewByteTable(nil)
	uppers := []uint32{0, 0x00123400, 0xabcdef00, 0xffffff00}
	for b := uint32(0); b < 256; b++ {
		for _, up := range uppers {
			state := up | b
			if got, want := tab.NextByte(state), ser.NextByte(state); got != want {
				t.Fatalf("state %#08x: table byte step %#08x, serial %#08x", state, got, want)
			}
		}
	}
}

func TestStepEdgeCases(t *testing.T) {
	if got := Step(2, Poly); got != 1 {
		t.Fatalf("Step(2): got %#x want 0x1", got)
	}
	// Shifting out a set bit from state 1 leaves exactly the polynomial.
	if got := Step(1, Poly); got != Poly {
		t.Fatalf("Step(1): got %#08x want %#08x", got, Poly)
	}
	if DefaultTable()[0] != 0 {
		t.Fatalf("table[0] must be 0, got %#08x", DefaultTable()[0])
	}
	// Low byte 0x80: only the eighth step shifts out a set bit.
	if DefaultTable()[0x80] != Poly {
		t.Fatalf("table[0x80] must equal the polynomial, got %#08x", DefaultTable()[0x80])
	}
}

func TestDeriveTableCustomPolynomial(t *testing.T) {
	const poly = 0xB4BCD35C // another maximal 32-bit polynomial
	ser := NewBitSerial(poly)
	tab := NewByteTable(DeriveTable(poly))
	state := uint32(0xdeadbeef)
	s1, s2 := state, state
	for i := 0; i < 512; i++ {
		s1 = ser.NextWord(s1)
		s2 = tab.NextWord(s2)
		if s1 != s2 {
			t.Fatalf("poly %#x diverges at word %d", poly, i)
		}
	}
}

func BenchmarkNextWordTable(b *testing.B) {
	g := NewByteTable(nil)
	state := DefaultSeed
	for i := 0; i < b.N; i++ {
		state = g.NextWord(state)
	}
	sink = state
}

func BenchmarkNextWordBitSerial(b *testing.B) {
	g := NewBitSerial(0)
	state := DefaultSeed
	for i := 0; i < b.N; i++ {
		state = g.NextWord(state)
	}
	sink = state
}

var sink uint32
