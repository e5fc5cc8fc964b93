package term

import "testing"

func buildTestSignature() *Signature {
	sig := NewSignature()
	sig.Declare(FuncInfo{Name: "0", Arity: 0, Weight: 1, Precedence: 0, Minimal: true})
	sig.Declare(FuncInfo{Name: "1", Arity: 2, Weight: 1, Precedence: 1})
	return sig
}

func TestBuilderEmitAndValidate(t *testing.T) {
	sig := buildTestSignature()
	zero, _ := sig.Lookup("0")
	one, _ := sig.Lookup("1")

	b := NewBuilder(0)
	// 1(X0, 0)
	b.EmitFun(one, func(b *Builder) {
		b.EmitVar(0)
		b.EmitFun(zero, nil)
	})
	tm := b.Finish()

	if err := tm.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if tm.Size() != 3 {
		t.Fatalf("size = %d, want 3 (header + var + header)", tm.Size())
	}
	if tm.Functor() != one {
		t.Fatalf("functor mismatch")
	}
	args := tm.Args().Terms()
	if len(args) != 2 {
		t.Fatalf("want 2 args, got %d", len(args))
	}
	if !args[0].IsVar() || args[0].Var() != 0 {
		t.Fatalf("first arg should be X0")
	}
	if args[1].IsVar() || args[1].Functor() != zero {
		t.Fatalf("second arg should be 0")
	}
}

func TestBuilderEmitTermSlice(t *testing.T) {
	sig := buildTestSignature()
	zero, _ := sig.Lookup("0")
	one, _ := sig.Lookup("1")

	b := NewBuilder(0)
	b.EmitFun(zero, nil)
	zeroTerm := b.Finish()

	b2 := NewBuilder(0)
	b2.EmitFun(one, func(b *Builder) {
		b.EmitTermSlice(zeroTerm)
		b.EmitTermSlice(zeroTerm)
	})
	tm := b2.Finish()
	if err := tm.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if tm.Args().Len() != 2 {
		t.Fatalf("want 2 args, got %d", tm.Args().Len())
	}
}

func TestBuilderFinishList(t *testing.T) {
	sig := buildTestSignature()
	zero, _ := sig.Lookup("0")

	b := NewBuilder(0)
	b.EmitFun(zero, nil)
	l := b.FinishList()
	if l.Len() != 1 {
		t.Fatalf("FinishList on one top-level term: Len() = %d, want 1", l.Len())
	}

	b.Reset()
	l = b.FinishList()
	if l.Len() != 0 {
		t.Fatalf("FinishList on an empty builder: Len() = %d, want 0", l.Len())
	}

	b.EmitFun(zero, nil)
	b.EmitFun(zero, nil)
	l = b.FinishList()
	if l.Len() != 2 {
		t.Fatalf("FinishList on two top-level terms: Len() = %d, want 2", l.Len())
	}
}

func TestBuilderEmitTermListSlice(t *testing.T) {
	sig := buildTestSignature()
	zero, _ := sig.Lookup("0")
	one, _ := sig.Lookup("1")

	lb := NewBuilder(0)
	lb.EmitFun(zero, nil)
	lb.EmitVar(0)
	args := lb.FinishList()

	b := NewBuilder(0)
	b.EmitFun(one, func(b *Builder) {
		b.EmitTermListSlice(args)
	})
	tm := b.Finish()
	if err := tm.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	got := tm.Args().Terms()
	if len(got) != 2 {
		t.Fatalf("want 2 args spliced from the list, got %d", len(got))
	}
	if got[0].IsVar() || got[0].Functor() != zero {
		t.Fatalf("first arg should be 0, got %v", got[0])
	}
	if !got[1].IsVar() || got[1].Var() != 0 {
		t.Fatalf("second arg should be X0, got %v", got[1])
	}
}

func TestVarsDedup(t *testing.T) {
	sig := buildTestSignature()
	one, _ := sig.Lookup("1")
	b := NewBuilder(0)
	b.EmitFun(one, func(b *Builder) {
		b.EmitVar(0)
		b.EmitVar(0)
	})
	tm := b.Finish()
	vs := tm.Vars(nil)
	if len(vs) != 1 || vs[0] != 0 {
		t.Fatalf("Vars = %v, want [0]", vs)
	}
}
