package rewrite

import (
	"testing"

	"twee/internal/index"
	"twee/internal/kbo"
	"twee/internal/rule"
	"twee/internal/term"
)

func testSig() (*term.Signature, term.FuncID, term.FuncID) {
	sig := term.NewSignature()
	zero := sig.Declare(term.FuncInfo{Name: "0", Arity: 0, Weight: 1, Precedence: 0, Minimal: true})
	one := sig.Declare(term.FuncInfo{Name: "1", Arity: 2, Weight: 1, Precedence: 1})
	return sig, zero, one
}

func mkVar(v term.Var) term.Term {
	b := term.NewBuilder(1)
	b.EmitVar(v)
	return b.Finish()
}

func mkConst(f term.FuncID) term.Term {
	b := term.NewBuilder(1)
	b.EmitFun(f, nil)
	return b.Finish()
}

func mkBin(f term.FuncID, x, y term.Term) term.Term {
	b := term.NewBuilder(0)
	b.EmitFun(f, func(b *term.Builder) {
		b.EmitTermSlice(x)
		b.EmitTermSlice(y)
	})
	return b.Finish()
}

type ruleTable map[int]*rule.Rule

func (rt ruleTable) Rule(id int) (*rule.Rule, bool) {
	r, ok := rt[id]
	return r, ok
}

// buildRightIdentitySystem builds the S1-style rule set {1(x,0)->x}.
func buildRightIdentitySystem(t *testing.T) (*kbo.Ordering, *term.Signature, *index.RuleIndex, ruleTable) {
	sig, zero, one := testSig()
	o := kbo.New(sig)
	x := mkVar(0)
	eq := rule.Equation{LHS: mkBin(one, x, mkConst(zero)), RHS: x}
	r, err := rule.Orient(o, sig, eq)
	if err != nil {
		t.Fatalf("orient failed: %v", err)
	}
	rx := index.NewRuleIndex()
	rx.Insert(1, r)
	return o, sig, rx, ruleTable{1: r}
}

func TestSimplifyReducesToNormalForm(t *testing.T) {
	_, _, rx, rt := buildRightIdentitySystem(t)
	_, zero, one := testSig()
	// 1(1(a,0),0) should simplify to a plain constant "a" after two steps.
	a := mkConst(zero) // reuse zero's constant as a stand-in ground term
	target := mkBin(one, mkBin(one, a, mkConst(zero)), mkConst(zero))

	got := Simplify(rx, rt, target)
	if !got.Equal(a) {
		t.Fatalf("Simplify(%v) = %v, want %v", target, got, a)
	}
}

func TestAtRootFindsOneStep(t *testing.T) {
	o, sig, rx, rt := buildRightIdentitySystem(t)
	_, zero, one := testSig()
	a := mkConst(zero)
	target := mkBin(one, a, mkConst(zero))

	strat := AtRoot(o, sig, rx.All, rt)
	steps := strat(target)
	if len(steps) != 1 {
		t.Fatalf("expected exactly one step at root, got %d", len(steps))
	}
	if !steps[0].Result().Equal(a) {
		t.Fatalf("step result = %v, want %v", steps[0].Result(), a)
	}
}

func TestNormaliseWithConverges(t *testing.T) {
	o, sig, rx, rt := buildRightIdentitySystem(t)
	_, zero, one := testSig()
	a := mkConst(zero)
	target := mkBin(one, mkBin(one, a, mkConst(zero)), mkConst(zero))

	strat := AtRoot(o, sig, rx.All, rt)
	red, err := NormaliseWith(strat, target, 1000)
	if err != nil {
		t.Fatalf("NormaliseWith failed: %v", err)
	}
	if !red.Result().Equal(a) {
		t.Fatalf("NormaliseWith result = %v, want %v", red.Result(), a)
	}
	if !red.Start().Equal(target) {
		t.Fatalf("NormaliseWith start = %v, want %v", red.Start(), target)
	}
}

func TestNormalFormsDedupesAcrossSeeds(t *testing.T) {
	o, sig, rx, rt := buildRightIdentitySystem(t)
	_, zero, one := testSig()
	a := mkConst(zero)
	seed1 := mkBin(one, a, mkConst(zero))
	seed2 := mkBin(one, mkBin(one, a, mkConst(zero)), mkConst(zero))

	strat := AtRoot(o, sig, rx.All, rt)
	nfs, err := NormalForms(strat, []term.Term{seed1, seed2}, 1000)
	if err != nil {
		t.Fatalf("NormalForms failed: %v", err)
	}
	if len(nfs) != 1 {
		t.Fatalf("expected both seeds to normalise to the single shared term %v, got %d results", a, len(nfs))
	}
	if !nfs[0].Equal(a) {
		t.Fatalf("NormalForms result = %v, want %v", nfs[0], a)
	}
}

func TestNestedExcludesRootButFindsChildStep(t *testing.T) {
	o, sig, rx, rt := buildRightIdentitySystem(t)
	_, zero, one := testSig()
	a := mkConst(sig.Declare(term.FuncInfo{Name: "a", Arity: 0, Weight: 1, Precedence: 2}))
	// 1(1(a,0), a): the root itself is not a redex (its second argument
	// is a, not 0), but its left child 1(a,0) is.
	b := mkBin(one, a, mkConst(zero))
	target := mkBin(one, b, a)

	root := AtRoot(o, sig, rx.All, rt)
	nested := Nested(root)
	steps := nested(target)
	if len(steps) != 1 {
		t.Fatalf("expected exactly one nested step, got %d", len(steps))
	}
	if steps[0].Result().Equal(target) {
		t.Fatal("Nested step should not be a no-op")
	}
	if len(root(target)) != 0 {
		t.Fatal("test setup invalid: root should offer no reduction at the top of target")
	}
}

func TestSuccessorsIncludesSeed(t *testing.T) {
	o, sig, rx, rt := buildRightIdentitySystem(t)
	_, zero, one := testSig()
	a := mkConst(zero)
	seed := mkBin(one, a, mkConst(zero))

	strat := AtRoot(o, sig, rx.All, rt)
	succ := Successors(strat, []term.Term{seed})
	found := false
	for _, s := range succ {
		if s.Equal(seed) {
			found = true
		}
	}
	if !found {
		t.Fatal("Successors should include the seed term itself")
	}
}
