package tablecache

import (
	"testing"

	"memcheck-core/lfsr"
)

func TestGetDerivesOnce(t *testing.T) {
	c := New(4)
	a := c.Get(lfsr.Poly)
	b := c.Get(lfsr.Poly)
	if a != b {
		t.Fatal("second Get must return the cached table pointer")
	}
	if c.Len() != 1 {
		t.Fatalf("cache holds %d tables, want 1", c.Len())
	}
}

func TestGetMatchesDirectDerivation(t *testing.T) {
	c := New(0)
	got := c.Get(lfsr.Poly)
	want := lfsr.DefaultTable()
	for b := range want {
		if got[b] != want[b] {
			t.Fatalf("cached table[%#02x] = %#08x, want %#08x", b, got[b], want[b])
		}
	}
}

func TestEviction(t *testing.T) {
	c := New(2)
	c.Get(0x80000057)
	c.Get(0xb4bcd35c)
	c.Get(0xa55a5a5a)
	if c.Len() != 2 {
		t.Fatalf("cache holds %d tables, want 2 after eviction", c.Len())
	}
}
