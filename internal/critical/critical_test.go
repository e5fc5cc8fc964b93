package critical

import (
	"testing"

	"twee/internal/index"
	"twee/internal/kbo"
	"twee/internal/rule"
	"twee/internal/term"
)

func testSig() (*term.Signature, term.FuncID, term.FuncID) {
	sig := term.NewSignature()
	e := sig.Declare(term.FuncInfo{Name: "e", Arity: 0, Weight: 1, Precedence: 0, Minimal: true})
	one := sig.Declare(term.FuncInfo{Name: "1", Arity: 2, Weight: 1, Precedence: 1})
	return sig, e, one
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

type activeTable map[int]*Active

func (at activeTable) Active(id int) (*Active, bool) {
	a, ok := at[id]
	return a, ok
}

// S1-style setup: 1(x,e)=x and 1(e,x)=x overlap at the e-position.
func TestOverlapsBetweenIdentityRules(t *testing.T) {
	sig, e, one := testSig()
	o := kbo.New(sig)
	x := mkVar(0)

	r1, err := rule.Orient(o, sig, rule.Equation{LHS: mkBin(one, x, mkConst(e)), RHS: x})
	if err != nil {
		t.Fatalf("orient r1: %v", err)
	}
	r2, err := rule.Orient(o, sig, rule.Equation{LHS: mkBin(one, mkConst(e), x), RHS: x})
	if err != nil {
		t.Fatalf("orient r2: %v", err)
	}

	ids := 0
	next := func() int { ids++; return ids }
	a1 := NewActive(1, 0, r1, r1.LHS, next)
	a2 := NewActive(2, 0, r2, r2.LHS, next)

	rules := activeTable{1: a1, 2: a2}
	idx := index.NewRuleIndex()
	idx.Insert(a1.Views[0].RuleID, r1)
	idx.Insert(a2.Views[0].RuleID, r2)
	ovs := Overlaps(10, idx, rules, []int{1, 2}, a2)
	if len(ovs) == 0 {
		t.Fatal("expected at least one overlap between the two identity rules")
	}
	for _, ov := range ovs {
		if ov.CP.Equation.LHS.Size() == 0 {
			t.Fatal("overlap produced an empty term")
		}
	}
}

// TestOverlapsPrunesFunctorIncompatiblePartners exercises idx's role
// in Overlaps directly: a rule over a disjoint function symbol can
// never unify with any non-variable position of the identity rules,
// so pruning via idx.All.ApproxMatches must rule it out entirely
// rather than leave it to a never-attempted unify.
func TestOverlapsPrunesFunctorIncompatiblePartners(t *testing.T) {
	sig, e, one := testSig()
	g := sig.Declare(term.FuncInfo{Name: "g", Arity: 1, Weight: 1, Precedence: 2})
	o := kbo.New(sig)
	x := mkVar(0)

	r1, err := rule.Orient(o, sig, rule.Equation{LHS: mkBin(one, x, mkConst(e)), RHS: x})
	if err != nil {
		t.Fatalf("orient r1: %v", err)
	}
	gb := term.NewBuilder(0)
	gb.EmitFun(g, func(b *term.Builder) { b.EmitTermSlice(x) })
	lhsG := gb.Finish()
	r2, err := rule.Orient(o, sig, rule.Equation{LHS: lhsG, RHS: x})
	if err != nil {
		t.Fatalf("orient r2: %v", err)
	}

	ids := 0
	next := func() int { ids++; return ids }
	a1 := NewActive(1, 0, r1, r1.LHS, next)
	a2 := NewActive(2, 0, r2, r2.LHS, next)

	rules := activeTable{1: a1, 2: a2}
	idx := index.NewRuleIndex()
	idx.Insert(a1.Views[0].RuleID, r1)
	idx.Insert(a2.Views[0].RuleID, r2)

	// g(x)->x still overlaps itself at the root; only pairs between the
	// two different rules must be pruned.
	ovs := Overlaps(10, idx, rules, []int{1, 2}, a2)
	cross := 0
	for _, ov := range ovs {
		if ov.Rule1ID != ov.Rule2ID {
			cross++
		}
	}
	if cross != 0 {
		t.Fatalf("expected no overlaps between functor-disjoint rules, got %d", cross)
	}
}

func TestSplitRecognisesTrivialPair(t *testing.T) {
	_, e, _ := testSig()
	cp := CriticalPair{Equation: rule.Equation{LHS: mkConst(e), RHS: mkConst(e)}}
	_, joinable := Split(index.NewRuleIndex(), activeLookupStub{}, true, cp)
	if !joinable {
		t.Fatal("expected a trivially equal pair to be joinable")
	}
}

type activeLookupStub struct{}

func (activeLookupStub) Rule(int) (*rule.Rule, bool) { return nil, false }

type ruleTable map[int]*rule.Rule

func (rt ruleTable) Rule(id int) (*rule.Rule, bool) { r, ok := rt[id]; return r, ok }

// TestSplitSimpleFlagGatesRewriting exercises config.JoinStrategies.Simple's
// effect on Split directly: the same non-trivial pair is joinable once
// the index's rewrite rule reduces it to a trivial equality, but only
// when simple is enabled; with simple disabled Split must not rewrite
// at all and must return the pair unchanged.
func TestSplitSimpleFlagGatesRewriting(t *testing.T) {
	sig, e, one := testSig()
	o := kbo.New(sig)
	x := mkVar(0)

	r, err := rule.Orient(o, sig, rule.Equation{LHS: mkBin(one, x, mkConst(e)), RHS: x})
	if err != nil {
		t.Fatalf("orient: %v", err)
	}
	idx := index.NewRuleIndex()
	idx.Insert(1, r)
	lookup := ruleTable{1: r}

	cp := CriticalPair{Equation: rule.Equation{LHS: mkBin(one, x, mkConst(e)), RHS: x}}

	if _, joinable := Split(idx, lookup, false, cp); joinable {
		t.Fatal("expected Split to leave the pair unjoined with simple disabled")
	}
	residual, joinable := Split(idx, lookup, false, cp)
	if !residual.Equation.LHS.Equal(cp.Equation.LHS) || !residual.Equation.RHS.Equal(cp.Equation.RHS) {
		t.Fatal("expected Split to return the pair unchanged with simple disabled")
	}
	if joinable {
		t.Fatal("expected not joinable with simple disabled")
	}

	if _, joinable := Split(idx, lookup, true, cp); !joinable {
		t.Fatal("expected Split to join the pair via rewriting with simple enabled")
	}
}
