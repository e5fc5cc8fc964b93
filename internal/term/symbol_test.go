package term

import "testing"

func TestSymbolRoundTrip(t *testing.T) {
	cases := []Parts{
		{IsVar: false, ID: 0, Size: 1},
		{IsVar: false, ID: 5, Size: 12},
		{IsVar: true, ID: 0, Size: 1},
		{IsVar: true, ID: 1<<31 - 1, Size: 1},
		{IsVar: false, ID: 7, Size: 1<<32 - 1},
	}
	for _, p := range cases {
		s := Pack(p)
		if got := Pack(Unpack(s)); got != s {
			t.Errorf("Pack(Unpack(%v)) = %v, want %v", s, got, s)
		}
	}

	// For every 64-bit pattern in a sample, packing its unpacked form
	// reproduces it exactly: Unpack never sees bits Pack didn't put
	// there, so the round trip is exact within the valid (masked)
	// domain.
	for _, raw := range []uint64{0, 1, 0xFFFFFFFF, 1 << 63, ^uint64(0)} {
		s := Symbol(raw)
		again := Pack(Unpack(s))
		if again != s {
			t.Errorf("Pack(Unpack(%#x)) = %#x, want %#x", raw, again, raw)
		}
	}
}

func TestSymbolFields(t *testing.T) {
	s := FunSymbol(FuncID(3), 7)
	if s.IsVar() {
		t.Fatal("FunSymbol reported IsVar")
	}
	if s.FunID() != 3 {
		t.Fatalf("FunID = %d, want 3", s.FunID())
	}
	if s.Size() != 7 {
		t.Fatalf("Size = %d, want 7", s.Size())
	}

	v := VarSymbol(Var(9))
	if !v.IsVar() {
		t.Fatal("VarSymbol did not report IsVar")
	}
	if v.VarID() != 9 {
		t.Fatalf("VarID = %d, want 9", v.VarID())
	}
	if v.Size() != 1 {
		t.Fatalf("variable size = %d, want 1", v.Size())
	}
}

func TestWithSizePreservesOtherFields(t *testing.T) {
	s := FunSymbol(FuncID(42), 1)
	s2 := s.withSize(99)
	if s2.FunID() != 42 || s2.IsVar() {
		t.Fatal("withSize corrupted id/tag bits")
	}
	if s2.Size() != 99 {
		t.Fatalf("Size = %d, want 99", s2.Size())
	}
}
